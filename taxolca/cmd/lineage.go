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
	"strings"

	"github.com/shenwei356/taxolca"
	"github.com/spf13/cobra"
)

var lineageCmd = &cobra.Command{
	Use:   "lineage <taxid> [taxid...]",
	Short: "lineage string or rank projection for one or more taxids",
	Long: `lineage prints, per taxid, either the full root-to-node lineage
(taxids or rank-coded names, with --names) or a projection onto a
requested comma-separated rank list (--at-ranks), following spec.md
§4.6's "unclassified below requested rank" convention.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			checkError(fmt.Errorf("lineage requires at least one taxid"))
		}
		opt := getOptions(cmd)
		tax := loadEngine(opt, taxolca.DefaultRankScheme())

		asNames := getFlagBool(cmd, "names")
		atRanks := getFlagString(cmd, "at-ranks")
		var ranks []string
		if atRanks != "" {
			ranks = strings.Split(atRanks, ",")
		}

		for _, id := range parseIDs(args) {
			rec, ok := tax.RecordOf(id, false)
			if !ok {
				continue
			}
			if ranks != nil {
				out, err := tax.AtRanks(rec, ranks)
				checkError(err)
				fmt.Printf("%d\t%s\n", id, strings.Join(out, "\t"))
				continue
			}
			fmt.Printf("%d\t%s\n", id, tax.LineageString(rec, asNames))
		}
	},
}

func init() {
	lineageCmd.Flags().BoolP("names", "n", false, "render lineage as rank-coded names instead of taxids")
	lineageCmd.Flags().StringP("at-ranks", "r", "", "comma-separated canonical ranks to project onto, e.g. superkingdom,genus,species")
	RootCmd.AddCommand(lineageCmd)
}
