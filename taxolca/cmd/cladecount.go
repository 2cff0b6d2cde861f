// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/shenwei356/taxolca"
	"github.com/spf13/cobra"
)

var cladeCountCmd = &cobra.Command{
	Use:   "clade-count [table]",
	Short: "aggregate a taxid/count table into per-clade subtree sums",
	Long: `clade-count reads a two-column "taxid\tcount" table (- for stdin,
default) and emits, per taxid seen, its own count and its whole-subtree
clade count, per spec.md §4.7.`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		tax := loadEngine(opt, taxolca.DefaultRankScheme())

		file := "-"
		if len(args) > 0 {
			file = args[0]
		}
		counts := readCountTable(file)
		out := tax.CladeCounts(counts)

		ids := make([]int64, 0, len(out))
		for id := range out {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			c := out[id]
			fmt.Printf("%d\t%d\t%d\n", id, c.SelfCount, c.CladeCount)
		}
		if opt.Verbose {
			log.Infof("aggregated %s input rows into %s clades", humanize.Comma(int64(len(counts))), humanize.Comma(int64(len(out))))
		}
	},
}

func init() {
	RootCmd.AddCommand(cladeCountCmd)
}
