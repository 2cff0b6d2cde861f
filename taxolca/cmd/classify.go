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

	"github.com/dustin/go-humanize"
	"github.com/shenwei356/taxolca"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [table]",
	Short: "weighted-majority LCA over a taxid/evidence hit table",
	Long: `classify reads a two-column "taxid\tevidence" hit table (- for
stdin, default), derives a vote weight per hit according to --vote-mode,
and reports the weighted-majority LCA selection per spec.md §4.8.

Unlike lca/lineage, an unresolvable (non-zero) taxid in the hit table is
a fatal error here, not a skip-and-warn: a classification run over a
corrupt hit table should not silently under-count.`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		tax := loadEngine(opt, taxolca.DefaultRankScheme())

		modeStr := getFlagString(cmd, "vote-mode")
		mode, err := taxolca.ParseVoteMode(modeStr)
		checkError(err)
		cutoff := getFlagFloat64(cmd, "cutoff")

		file := "-"
		if len(args) > 0 {
			file = args[0]
		}
		hits := readHitTable(file)

		res, err := tax.WeightedMajorityLCA(hits, mode, cutoff)
		checkError(err)

		fmt.Printf("%d\t%.2f\t%d\t%d\n", res.Selected, res.SelectedPercent, res.AgreeingHits, res.UnassignedCount)
		if opt.Verbose {
			log.Infof("classified %s hits (%s unassigned), selection covers %.1f%%",
				humanize.Comma(int64(len(hits))), humanize.Comma(int64(res.UnassignedCount)), res.SelectedPercent)
		}
	},
}

func init() {
	classifyCmd.Flags().StringP("vote-mode", "m", "uniform", "vote weight mode: uniform, minus_log_evalue, raw_score")
	classifyCmd.Flags().Float64P("cutoff", "c", 0.5, "majority cutoff in (0,1], fraction of total weight a candidate must cover")
	RootCmd.AddCommand(classifyCmd)
}
