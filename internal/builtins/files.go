package builtins

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// fileTools is grounded on original_source/kaynat/stdlib/file_tools.py,
// translated from Python's open()/os/shutil calls to the matching os
// package functions. Every failure is surfaced as a plain Go error; the
// calling interpreter wraps it into a spec §7 FileError at the call site.
func fileTools() []registration {
	return []registration{
		{"read_file", biReadFile},
		{"read_lines", biReadLines},
		{"write_file", biWriteFile},
		{"append_file", biAppendFile},
		{"file_exists", biFileExists},
		{"delete_file", biDeleteFile},
		{"copy_file", biCopyFile},
		{"move_file", biMoveFile},
		{"create_directory", biCreateDirectory},
		{"delete_directory", biDeleteDirectory},
		{"directory_exists", biDirectoryExists},
		{"list_directory", biListDirectory},
	}
}

func biReadFile(args []interp.Value) (interp.Value, error) {
	path, err := strArg("read_file", args, 0)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return strVal(string(content)), nil
}

func biReadLines(args []interp.Value) (interp.Value, error) {
	path, err := strArg("read_lines", args, 0)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	defer f.Close()

	var elements []interp.Value
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		elements = append(elements, strVal(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return interp.NewList(elements), nil
}

func biWriteFile(args []interp.Value) (interp.Value, error) {
	path, err := strArg("write_file", args, 0)
	if err != nil {
		return nil, err
	}
	content, err := strArg("write_file", args, 1)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("error writing file: %w", err)
	}
	return boolVal(true), nil
}

func biAppendFile(args []interp.Value) (interp.Value, error) {
	path, err := strArg("append_file", args, 0)
	if err != nil {
		return nil, err
	}
	content, err := strArg("append_file", args, 1)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error appending to file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return nil, fmt.Errorf("error appending to file: %w", err)
	}
	return boolVal(true), nil
}

func biFileExists(args []interp.Value) (interp.Value, error) {
	path, err := strArg("file_exists", args, 0)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	return boolVal(err == nil && !info.IsDir()), nil
}

func biDeleteFile(args []interp.Value) (interp.Value, error) {
	path, err := strArg("delete_file", args, 0)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("error deleting file: %w", err)
	}
	return boolVal(true), nil
}

func biCopyFile(args []interp.Value) (interp.Value, error) {
	src, err := strArg("copy_file", args, 0)
	if err != nil {
		return nil, err
	}
	dst, err := strArg("copy_file", args, 1)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("error copying file: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, fmt.Errorf("error copying file: %w", err)
	}
	return boolVal(true), nil
}

func biMoveFile(args []interp.Value) (interp.Value, error) {
	src, err := strArg("move_file", args, 0)
	if err != nil {
		return nil, err
	}
	dst, err := strArg("move_file", args, 1)
	if err != nil {
		return nil, err
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("error moving file: %w", err)
	}
	return boolVal(true), nil
}

func biCreateDirectory(args []interp.Value) (interp.Value, error) {
	path, err := strArg("create_directory", args, 0)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}
	return boolVal(true), nil
}

func biDeleteDirectory(args []interp.Value) (interp.Value, error) {
	path, err := strArg("delete_directory", args, 0)
	if err != nil {
		return nil, err
	}
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("error deleting directory: %w", err)
	}
	return boolVal(true), nil
}

func biDirectoryExists(args []interp.Value) (interp.Value, error) {
	path, err := strArg("directory_exists", args, 0)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	return boolVal(err == nil && info.IsDir()), nil
}

func biListDirectory(args []interp.Value) (interp.Value, error) {
	path, err := strArg("list_directory", args, 0)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("error listing directory: %w", err)
	}
	elements := make([]interp.Value, len(entries))
	for i, e := range entries {
		elements[i] = strVal(e.Name())
	}
	return interp.NewList(elements), nil
}
