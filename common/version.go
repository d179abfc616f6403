//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package common

import "fmt"

const Version = "0.4.2"
const Build = 118

// Banner prints version, copyright, and license information
func Banner(program, version string, build int) {
	fmt.Printf("%s version %s (build %d)\n", program, version, build)
	fmt.Printf("Copyright 2025-2026 PartDesk Systems Inc.\n")
	fmt.Printf("\nLicense:\n")
	fmt.Printf("  This software is licensed under the Apache License, Version 2.0.\n")
	fmt.Printf("  A copy of the license can be found in the LICENSE file.\n")
	fmt.Printf("\n")
}
