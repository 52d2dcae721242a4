package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	golog "github.com/ipfs/go-log"
	"github.com/spf13/cobra"

	"github.com/fission-codes/go-bloom-hash/bloom"
	"github.com/fission-codes/go-bloom-hash/hasher"
	"github.com/fission-codes/go-bloom-hash/murmur"
)

var log = golog.Logger("bloomhash")

var seed uint64
var hasherName string
var numHashes uint64
var numBits uint64

// root command
var root = &cobra.Command{
	Use:   "bloomhash",
	Short: "bloomhash derives 128-bit digests and Bloom filter bit positions from bytes",
}

// digest
var digest = &cobra.Command{
	Use:   "digest [data ...]",
	Short: "print the 128-bit murmur digest of the arguments, or of stdin when none are given",
	Run: func(cmd *cobra.Command, args []string) {
		var data []byte
		if len(args) == 0 {
			var err error
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Println(err.Error())
				return
			}
		} else {
			for _, arg := range args {
				data = append(data, arg...)
			}
		}
		log.Debugf("hashing %d bytes with seed %d", len(data), seed)

		h1, h2 := murmur.Sum128Seed(data, seed)
		fmt.Printf("%016x%016x\n", h1, h2)
	},
}

// indices
var indices = &cobra.Command{
	Use:   "indices item [item ...]",
	Short: "print the bit positions each item sets in a filter of the given shape",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g, err := hasher.New(hasherName)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		for _, item := range args {
			if err := g.AddString(item); err != nil {
				fmt.Println(err.Error())
				return
			}
		}

		shape := bloom.Shape{HasherName: hasherName, K: numHashes, M: numBits}
		it, err := g.Indices(shape)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		log.Debugf("deriving %d indices for %d items", g.Len()*int(numHashes), g.Len())

		for _, item := range args {
			fmt.Printf("%s:", item)
			for j := uint64(0); j < numHashes; j++ {
				fmt.Printf(" %d", it.Value())
			}
			fmt.Println()
		}
	},
}

// estimate
var estimate = &cobra.Command{
	Use:   "estimate n fpp",
	Short: "print the filter size m and hash count k for n items at the given false positive probability",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fpp, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		if n == 0 || fpp <= 0 || fpp >= 1 {
			fmt.Println("n must be positive and fpp must be in (0, 1)")
			return
		}

		m, k := bloom.EstimateParameters(n, fpp)
		fmt.Printf("m = %d bits, k = %d hash functions\n", m, k)
	},
}

// hashers
var hashers = &cobra.Command{
	Use:   "hashers",
	Short: "list the registered hash function names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range hasher.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	digest.Flags().Uint64VarP(&seed, "seed", "s", 0, "hash seed")

	indices.Flags().StringVar(&hasherName, "hasher", hasher.Murmur128Name, "registered hash function name")
	indices.Flags().Uint64VarP(&numHashes, "hash-count", "k", 3, "hash functions per item")
	indices.Flags().Uint64VarP(&numBits, "bit-count", "m", 1024, "filter size in bits")

	root.AddCommand(digest, indices, estimate, hashers)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Println(err)
	}
}
