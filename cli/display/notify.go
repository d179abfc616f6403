//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package display

import "fmt"

// Notifications are one-line operator messages with a severity tag. They
// go to stdout because the CLI is interactive; structured logs are a server
// concern.

func Success(format string, args ...any) {
	fmt.Printf("[ok] "+format+"\n", args...)
}

func Info(format string, args ...any) {
	fmt.Printf("[info] "+format+"\n", args...)
}

func Warning(format string, args ...any) {
	fmt.Printf("[warn] "+format+"\n", args...)
}

func Failure(format string, args ...any) {
	fmt.Printf("[error] "+format+"\n", args...)
}
