// Command ddsgtf converts between DDS and GTF texture files. It
// auto-detects the input's direction from its magic, in the same
// magic-dispatch spirit the browser's wad package registers chunk
// handlers by FourCC.
package main

import (
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mogaika/ddsgtf/internal/dds"
	"github.com/mogaika/ddsgtf/texconv"
)

func main() {
	var (
		out         string
		id          int
		linearize   bool
		unnormalize bool
		verbose     bool
		inputs      []string
	)
	flag.StringVarP(&out, "out", "o", "", "output file path")
	flag.IntVar(&id, "id", 0, "gtf->dds only: attribute id of the texture to extract")
	flag.BoolVar(&linearize, "linearize", false, "dds->gtf: force linear (non-swizzled) GTF layout for non-DXT textures")
	flag.BoolVar(&unnormalize, "unnormalize", false, "dds->gtf: set the Unnormalize format flag")
	flag.BoolVarP(&verbose, "verbose", "v", false, "log one line per planned texture")
	flag.StringArrayVar(&inputs, "input", nil, "input DDS file (repeatable; packs all inputs into one GTF)")
	flag.Parse()

	texconv.SetVerbose(verbose)

	opts := texconv.Options{Linearize: linearize, Unnormalize: unnormalize}

	var result []byte
	var err error

	switch {
	case len(inputs) > 0:
		result, err = packInputs(inputs, opts)
	case len(flag.Args()) == 1:
		result, err = convertSingle(flag.Args()[0], id, opts)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}

	if out == "" {
		out = "out.bin"
	}
	if err := os.WriteFile(out, result, 0644); err != nil {
		log.Fatal(err)
	}
}

func packInputs(paths []string, opts texconv.Options) ([]byte, error) {
	images := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		images[i] = data
	}
	return texconv.PackDDS(images, opts)
}

func convertSingle(path string, id int, opts texconv.Options) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(data) >= dds.HeaderSize && string(data[0:4]) == dds.Magic {
		return texconv.DecodeDDS(data, opts)
	}
	return texconv.DecodeGTF(data, id)
}
