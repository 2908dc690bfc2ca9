// Command rowbench measures row-transform throughput for a set of sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/rowfft"
	"github.com/cwbudde/rowfft/logger"
)

func main() {
	var (
		sizeList = flag.String("sizes", "64,256,1024", "comma-separated transform lengths")
		rows     = flag.Int("rows", 64, "rows per matrix")
		iters    = flag.Int("iters", 20, "benchmark iterations")
		warmup   = flag.Int("warmup", 3, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	log := logger.Logger()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("rows=%d iters=%d warmup=%d\n", *rows, *iters, *warmup)
	fmt.Printf("%8s  %12s  %12s\n", "size", "ns/row", "rows/s")

	for _, n := range sizes {
		plan, err := rowfft.NewPlan(n)
		if err != nil {
			log.Error().Err(err).Int("n", n).Msg("skipping size")
			continue
		}

		matrix := make([]complex64, n*(*rows))
		for i := range matrix {
			matrix[i] = complex(float32(rnd.Float64()*2-1), float32(rnd.Float64()*2-1))
		}

		for i := 0; i < *warmup; i++ {
			if err := plan.ForwardRows(matrix, *rows); err != nil {
				log.Fatal().Err(err).Msg("warmup failed")
			}
		}

		start := time.Now()
		for i := 0; i < *iters; i++ {
			if err := plan.ForwardRows(matrix, *rows); err != nil {
				log.Fatal().Err(err).Msg("benchmark failed")
			}
		}
		elapsed := time.Since(start)

		totalRows := *iters * *rows
		nsPerRow := float64(elapsed.Nanoseconds()) / float64(totalRows)
		rowsPerSec := float64(totalRows) / elapsed.Seconds()

		fmt.Printf("%8d  %12.1f  %12.0f\n", n, nsPerRow, rowsPerSec)
	}
}

func parseSizes(list string) []int {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}
		sizes = append(sizes, n)
	}

	return sizes
}
