// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

// ProbeValue is what [Test] always answers
const ProbeValue = 42

// Test returns [ProbeValue]. It performs no io and is only used to check
// the package is wired and callable
func Test() int {
	return ProbeValue
}
