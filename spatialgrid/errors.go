// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import (
	"errors"
	"fmt"
)

const packageName = "spatialgrid: "

// ErrOutOfDomain is the cause of the error returned when inserting a
// coordinate which lies outside a Grid's root domain. Use errors.Is to
// test for it.
var ErrOutOfDomain = textErr("out of domain")

func textErr(text string) error {
	return errors.New(packageName + text)
}

func domainErr(x, y int, b Box) error {
	return fmt.Errorf("point (%d,%d) outside %s: %w", x, y, b, ErrOutOfDomain)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
