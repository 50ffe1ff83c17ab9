// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// tree item for the string keys
type key struct {
	s string
}

func (k key) String() string {
	return k.s
}

func (k key) Compare(x interface{}) int {
	return strings.Compare(k.s, x.(key).s)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "random", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'R'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--tree] [--list] [--random] [--reverse] [--file=FILE] [--count=N] [--delete=N] [key…]", program)
	}

	verbose := len(options["verbose"]) > 0
	showTree := len(options["tree"]) > 0
	showList := len(options["list"]) > 0
	random := len(options["random"]) > 0
	reverse := len(options["reverse"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	toDelete := 0
	if len(options["delete"]) > 0 {
		toDelete, err = strconv.Atoi(options["delete"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert delete error: %s", program, err)
		}
		if toDelete < 0 {
			exitwithstatus.Message("%s: invalid delete: %d", program, toDelete)
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "treedump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// assemble the key list
	keys := []key{}
	if len(options["file"]) > 0 {
		filename := options["file"][0]
		if verbose {
			fmt.Printf("read keys from file: %q\n", filename)
		}

		f, err := os.Open(filename)
		if nil != err {
			exitwithstatus.Message("%s: open file error: %s", program, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			s := strings.TrimSpace(scanner.Text())
			if "" == s {
				continue
			}
			keys = append(keys, key{s})
		}
		if err := scanner.Err(); nil != err {
			exitwithstatus.Message("%s: read file error: %s", program, err)
		}
	} else if random {
		for i := 0; i < count; i += 1 {
			keys = append(keys, randomKey())
		}
	} else {
		for i := 0; i < count; i += 1 {
			keys = append(keys, key{fmt.Sprintf("%08d", i)})
		}
	}

	if 0 == len(keys) {
		exitwithstatus.Message("%s: no keys to insert", program)
	}

	// descending insert order drives the mirror rotations
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	if toDelete > len(keys) {
		exitwithstatus.Message("%s: delete: %d  exceeds keys: %d", program, toDelete, len(keys))
	}

	// build the tree
	tree := avl.New()
	for i, k := range keys {
		added := tree.Insert(k, i)
		if verbose && !added {
			fmt.Printf("duplicate key: %q\n", k)
		}
	}

	// delete a prefix of the inserted keys again
	for _, k := range keys[:toDelete] {
		tree.Delete(k)
	}

	// audit the result
	if !tree.CheckUp() {
		fault.Criticalf("up pointer check failed after %d inserts", len(keys))
		exitwithstatus.Message("%s: inconsistent up pointers", program)
	}
	if !tree.CheckCounts() {
		fault.Criticalf("height/weight check failed after %d inserts", len(keys))
		exitwithstatus.Message("%s: inconsistent heights or weights", program)
	}
	if !tree.IsBalanced() {
		fault.Criticalf("balance check failed after %d inserts", len(keys))
		exitwithstatus.Message("%s: unbalanced tree", program)
	}

	depth := 0
	if showTree {
		depth = tree.Print(verbose)
	}

	if showList {
		i := 0
		for p := tree.First(); nil != p; p = p.Next() {
			fmt.Printf("%d: %v → %v\n", i, p.Key(), p.Value())
			i += 1
		}
	}

	// report on any argument keys
	for _, s := range arguments {
		node, index := tree.Search(key{s})
		if nil == node {
			fmt.Printf("key: %q is not in the tree\n", s)
			continue
		}
		fmt.Printf("key: %q  index: %d  depth: %d\n", s, index, node.Depth())
		if verbose {
			if p := node.Prev(); nil != p {
				fmt.Printf("  prev: %v\n", p.Key())
			}
			if n := node.Next(); nil != n {
				fmt.Printf("  next: %v\n", n.Key())
			}
		}
	}

	if showTree {
		fmt.Printf("nodes: %d  height: %d  max depth: %d\n", tree.Count(), tree.Height(), depth)
	} else {
		fmt.Printf("nodes: %d  height: %d\n", tree.Count(), tree.Height())
	}
}

// a zero padded random numeric key
func randomKey() key {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		fault.Panic("random number generation failed")
	}
	n := binary.BigEndian.Uint32(b)
	return key{fmt.Sprintf("%08d", n%100000000)}
}
