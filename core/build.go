package core

import (
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"
)

// ShouldBuild returns true if the website has to be built. This should only
// return true after initialization.
func (co *Core) ShouldBuild() (bool, error) {
	co.buildMu.Lock()
	defer co.buildMu.Unlock()

	if co.buildName != "" {
		return false, nil
	}

	content, err := co.buildFS.ReadFile("last")
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}

		return true, err
	}

	co.buildName = string(content)
	if co.BuildHook != nil {
		co.BuildHook(filepath.Join(co.cfg.PublicDirectory, co.buildName))
	}
	return false, nil
}

// BuildFS is the write side of one build: all paths are relative to the
// build's own sub-directory of the public directory.
type BuildFS struct {
	co  *Core
	dir string
}

func (b *BuildFS) WriteFile(filename string, data []byte) error {
	filename = filepath.Join(b.dir, filename)

	err := b.co.buildFS.MkdirAll(filepath.Dir(filename), 0777)
	if err != nil {
		return err
	}

	return b.co.buildFS.WriteFile(filename, data, 0644)
}

// Build runs one build pass: render writes the whole site into a build
// directory, and on success the directory is committed as the current one.
// Fresh builds get a new hashed directory name; incremental ones reuse the
// current directory.
func (co *Core) Build(cleanBuildDirectory bool, render func(*BuildFS) error) error {
	co.buildMu.Lock()
	defer co.buildMu.Unlock()

	dir := co.buildName
	fresh := dir == "" || cleanBuildDirectory

	if fresh {
		h := fnv.New64a()
		_, err := h.Write([]byte(time.Now().UTC().String()))
		if err != nil {
			return fmt.Errorf("failed to generate hash: %w", err)
		}
		dir = hex.EncodeToString(h.Sum(nil))
	}

	err := render(&BuildFS{co: co, dir: dir})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if fresh {
		err = co.buildFS.WriteFile("last", []byte(dir), 0644)
		if err != nil {
			return fmt.Errorf("could not write last dir: %w", err)
		}

		co.buildName = dir
	}

	if co.BuildHook != nil {
		co.BuildHook(filepath.Join(co.cfg.PublicDirectory, dir))
	}

	return nil
}

// BuildName returns the name of the current build directory, empty before
// the first build.
func (co *Core) BuildName() string {
	co.buildMu.Lock()
	defer co.buildMu.Unlock()
	return co.buildName
}

// ReadBuildFile reads a file from the current build.
func (co *Core) ReadBuildFile(filename string) ([]byte, error) {
	return co.buildFS.ReadFile(filepath.Join(co.BuildName(), filename))
}

// IsLinkValid checks if the given link resolves to a page or asset in the
// built version of the website.
func (co *Core) IsLinkValid(urlPath string) (bool, error) {
	name := co.BuildName()

	_, err := co.buildFS.Stat(filepath.Join(name, urlPath))
	if err == nil {
		return true, nil
	}

	_, err = co.buildFS.Stat(filepath.Join(name, urlPath, "index.html"))
	if err == nil {
		return true, nil
	}

	return false, nil
}
