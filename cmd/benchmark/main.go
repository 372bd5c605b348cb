package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cipherkit/pkg/benchmark"
	"cipherkit/pkg/quasidihedral"
	"cipherkit/pkg/transform"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Command-line flags
var (
	transformFlag   string
	iterationsFlag  int
	payloadSizeFlag int
	keyFlag         string
	outputFlag      string
	helpFlag        bool
)

func init() {
	flag.StringVar(&transformFlag, "transform", "mask", "Transform to benchmark (mask, stride, flipskip, group, all)")
	flag.IntVar(&iterationsFlag, "iterations", 1000, "Number of iterations to run")
	flag.IntVar(&payloadSizeFlag, "payloadsize", 1024, "Payload size in bytes")
	flag.StringVar(&keyFlag, "key", "8675309", "Key for the keyed transforms")
	flag.StringVar(&outputFlag, "output", "", "Output file for results (CSV format)")
	flag.BoolVar(&helpFlag, "help", false, "Show help")

	flag.Parse()

	if helpFlag {
		printUsage()
		os.Exit(0)
	}
}

func printUsage() {
	fmt.Printf("cipherkit Benchmark Tool %s (built %s)\n\n", Version, BuildTime)
	fmt.Println("Usage: benchmark [options]")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()

	fmt.Println("\nExamples:")
	fmt.Println("  benchmark --transform mask --iterations 10000")
	fmt.Println("  benchmark --transform flipskip --key 314159 --payloadsize 4096")
	fmt.Println("  benchmark --transform all --output results.csv")
}

func buildTransform(name string) (transform.Transform, error) {
	switch strings.ToLower(name) {
	case "mask":
		return transform.NewBitmaskXOR([]byte(keyFlag))
	case "stride":
		return transform.NewStrideStep(2, 1)
	case "flipskip":
		return transform.NewFlipSkip([]byte(keyFlag), 1)
	case "group":
		return quasidihedral.NewCipher(), nil
	default:
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
}

func main() {
	names := []string{transformFlag}
	if strings.EqualFold(transformFlag, "all") {
		names = []string{"mask", "stride", "flipskip", "group"}
	}

	var results []benchmark.Result
	for _, name := range names {
		t, err := buildTransform(name)
		if err != nil {
			log.Fatalf("Failed to build transform: %v", err)
		}
		res, err := benchmark.Run(name, t, iterationsFlag, payloadSizeFlag)
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
		fmt.Println(res)
		results = append(results, res)
	}

	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		if err := benchmark.WriteCSV(f, results); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		fmt.Printf("Results written to %s\n", outputFlag)
	}
}
