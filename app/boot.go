//go:build !(tinygo && bootdebug)

package app

import "sparkcalc/hal"

func bootScreen(hal.HAL, string) {}

func bootDiagStart(hal.HAL) {}

func bootDone() {}
