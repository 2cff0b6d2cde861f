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

package taxolca

import "log"

// Logger is the collaborator the engine reports warnings and info through.
// It is never assumed to be a package-level global inside the engine; the
// CLI wires its own *logging.Logger (github.com/shenwei356/go-logging) into
// this interface at startup.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// nopLogger discards everything. Used when no Logger is supplied to New.
type nopLogger struct{}

func (nopLogger) Infof(format string, args ...interface{})    {}
func (nopLogger) Warningf(format string, args ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})   {}

// stdLogger is a minimal Logger backed by the standard library, for
// callers that don't want to pull in go-logging themselves.
type stdLogger struct{}

// NewStdLogger returns a Logger backed by the standard "log" package.
func NewStdLogger() Logger { return stdLogger{} }

func (stdLogger) Infof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}
func (stdLogger) Warningf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}
func (stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERRO] "+format, args...)
}
