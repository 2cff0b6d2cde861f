// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
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
	"os"
	"path/filepath"
	"strconv"

	"github.com/shenwei356/go-logging"
	"github.com/shenwei356/taxolca"
	"github.com/spf13/cobra"
)

// log is the package-wide logging backend, configured once by main's init().
// *logging.Logger already satisfies taxolca.Logger (Infof/Warningf/Errorf),
// so it is handed to taxolca.New directly -- no adapter needed.
var log = logging.MustGetLogger("taxolca")

// Options holds the flags shared by every subcommand.
type Options struct {
	DataDir string
	Prefix  string
	Verbose bool
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		DataDir: getFlagString(cmd, "data-dir"),
		Prefix:  getFlagString(cmd, "prefix"),
		Verbose: getFlagBool(cmd, "verbose"),
	}
}

// checkError is the process-terminator collaborator: log at Error level and
// exit, never panic. Construction-time failures (bad dump files, topology
// errors) flow through this.
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	s, err := cmd.Flags().GetString(flag)
	checkError(err)
	return s
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	b, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return b
}

func getFlagFloat64(cmd *cobra.Command, flag string) float64 {
	f, err := cmd.Flags().GetFloat64(flag)
	checkError(err)
	return f
}

// loadEngine discovers the dump files under opt.DataDir/opt.Prefix and
// builds the indexed engine, wiring the package logger in as the engine's
// Logger collaborator.
func loadEngine(opt *Options, ranks *taxolca.RankScheme) *taxolca.Taxonomy {
	prefix := filepath.Join(opt.DataDir, opt.Prefix)
	paths, err := taxolca.DiscoverDumpFiles(prefix)
	checkError(err)

	tax, err := taxolca.New(paths, &taxolca.Config{Ranks: ranks, Logger: log})
	checkError(err)

	if opt.Verbose {
		log.Infof("loaded %d taxa (root: %d)", tax.Size(), tax.RootExternalID())
	}
	return tax
}

// parseIDs parses a slice of decimal taxid strings, exiting via checkError
// on the first malformed one.
func parseIDs(args []string) []int64 {
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		checkError(err)
		ids[i] = id
	}
	return ids
}
