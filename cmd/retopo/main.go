// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command retopo analyzes the topology of polygon meshes.
package main

import "cogentcore.org/retopo/cmd/retopo/cmd"

func main() {
	cmd.Execute()
}
