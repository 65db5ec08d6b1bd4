// Command knightsliars explores the knights-and-liars labeling problem on
// lattices: forced-blue propagation, exact optimisation, labeling checks
// and the closed-form grid bound.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	code := 0
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("knightsliars: %v", err)
		code = 1
	}
	glog.Flush()
	os.Exit(code)
}
