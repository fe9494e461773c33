// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **treecmp %s**

Feed the same keys to a plain binary search tree and to an AVL tree, then compare what you get back.

Built with Go %s

# 1. Commands
* **compare** 10 20 30 --search 20 --search 60 : build both trees from the keys and report
* **scenarios** : run every scenario from the config file (ascending, descending and random by default)
* **render** 50 40 30 20 10 : draw the shape of both trees
* **bench** --size 100000 --seed 7 : insert random distinct keys and compare heights and timings
* **explore** : type keys interactively and watch both trees change
* **settings** : show the configuration, creating ~/.treecmp.yaml if missing

# 2. Keys
* Integers by default, or strings with --type string
* Separate keys with spaces or commas; quote string keys containing spaces
* Duplicate keys are ignored by both trees

# 3. What the AVL tree does
* Keeps |height(left) - height(right)| <= 1 at every node
* Repairs an insert with one of four patterns: LL, RR, LR or RL

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
