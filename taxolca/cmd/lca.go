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

	"github.com/shenwei356/taxolca"
	"github.com/spf13/cobra"
)

var lcaCmd = &cobra.Command{
	Use:   "lca <taxid> <taxid> [taxid...]",
	Short: "lowest common ancestor of two or more taxids",
	Long: `lca finds the lowest common ancestor of two or more taxids.

Unknown taxids are logged and skipped; the LCA is computed over whatever
remains of the set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			checkError(fmt.Errorf("lca requires at least two taxids"))
		}
		opt := getOptions(cmd)
		tax := loadEngine(opt, taxolca.DefaultRankScheme())

		rec, ok := tax.LCAOfSet(parseIDs(args))
		if !ok {
			checkError(fmt.Errorf("no known taxid among the given set"))
		}
		fmt.Println(rec.ExternalID)
	},
}

func init() {
	RootCmd.AddCommand(lcaCmd)
}
