package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lukaszgryglicki/icosampler/internal/icosampler"
)

func main() {
	var opts icosampler.Options
	flag.StringVar(&opts.Input, "i", "", "path to the input equirectangular image")
	flag.StringVar(&opts.Output, "o", "", "path to the output atlas image")
	flag.IntVar(&opts.Resolution, "r", icosampler.DefaultResolution, "resolution of a single triangular face")
	flag.IntVar(&opts.FaceOffset, "f", 0, "offset the way faces are arranged in the final image [-2, 2]")
	flag.Parse()

	icosampler.Debug = os.Getenv("DEBUG") != ""
	icosampler.Serial = os.Getenv("SERIAL") != ""

	if opts.Input == "" || opts.Output == "" {
		fmt.Println("both -i and -o are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := icosampler.Run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
