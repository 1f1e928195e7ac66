// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellTasks reads one command per line from r and splits each into
// words with shell quoting rules. Blank lines and lines starting with
// '#' are skipped.
func ShellTasks(r io.Reader) ([][]string, error) {
	var tasks [][]string
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellquote.Split(line)
		if err != nil {
			return nil, fmt.Errorf("parallel: line %d: %w", lineno, err)
		}
		if len(words) == 0 {
			continue
		}
		tasks = append(tasks, words)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// RunCommand runs argv and returns its combined output. It is a Func
// for use with ShellTasks. A failed command's error includes the tail
// of its output.
func RunCommand(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("parallel: empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s: %w\n%s", shellquote.Join(argv...), err, tail(out, 10))
	}
	return out, nil
}

// tail returns at most the last n lines of data.
func tail(data []byte, n int) []byte {
	data = bytes.TrimRight(data, "\n")
	if len(data) == 0 {
		return data
	}
	pos := len(data)
	for i := 0; i < n && pos > 0; i++ {
		pos = bytes.LastIndexByte(data[:pos], '\n')
		if pos < 0 {
			return data
		}
	}
	return data[pos+1:]
}
