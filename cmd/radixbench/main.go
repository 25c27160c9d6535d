// Command radixbench generates sequence files and benchmarks the parallel
// radix sort on them.
//
//	radixbench generate -n 10000000 --max 100000 -o input10m.txt
//	radixbench sort -r 3 -c input10m.txt
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/exascience/parradix/internal/cli"
)

func main() {
	if err := cli.App.Run(os.Args); err != nil {
		logrus.WithError(err).Error("radixbench failed")
		os.Exit(1)
	}
}
