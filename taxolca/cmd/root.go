// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
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
	"os"

	"github.com/spf13/cobra"
)

// VERSION is the CLI's release version.
const VERSION = "0.1.0"

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "taxolca",
	Short: "In-memory NCBI-taxdump LCA and classification engine",
	Long: fmt.Sprintf(`taxolca - In-memory NCBI-taxdump LCA and classification engine

Loads a nodes/names/merged taxdump triple into an Euler-tour + sparse-table
index, supporting O(1) pairwise LCA, lineage/rank projection, clade-count
aggregation, and weighted-majority LCA over per-read evidence tables.

Version: %s

Source code: https://github.com/shenwei356/taxolca

`, VERSION),
}

// Execute adds all child commands to the root command and parses flags. It
// is called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("data-dir", "d", ".", "directory holding the nodes/names/merged dump files")
	RootCmd.PersistentFlags().StringP("prefix", "p", "", "dump file prefix, e.g. \"taxdump\" for taxdump_nodes.dmp; empty for bare nodes.dmp")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "print verbose information")
}
