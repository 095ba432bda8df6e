package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Read parses the backing file and applies it to the registry: scalar
// lines set the matching option (firing its callback), structured lines
// go to the owning section's codec. Returns ErrNotFound when the file
// does not exist. Lines that fail scalar validation, name an undeclared
// option, or sit in an unknown section are logged and skipped; the read
// continues.
func (c *Config) Read() error {
	return c.load()
}

// Reload refreshes all registry state from the backing file using the
// two-phase protocol: first every structured section's codec releases
// its records, then the file is re-read top to bottom. The re-read is
// purely additive, which is why the teardown phase must come first.
//
// A missing file reports ErrNotFound before any teardown, leaving the
// registry, including structured records, untouched.
func (c *Config) Reload() error {
	if _, err := os.Stat(c.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, c.path)
		}
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	for _, s := range c.sections {
		if s.codec != nil {
			s.codec.Clear()
		}
	}
	c.logger.WithField("file", c.path).Debug("reloading configuration")
	return c.load()
}

func (c *Config) load() error {
	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, c.path)
		}
		return fmt.Errorf("open %s: %w", c.path, err)
	}
	defer f.Close()

	var current *Section
	lineno := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := line[1 : len(line)-1]
			current = c.Section(name)
			if current == nil {
				c.lineEntry(lineno).WithField("section", name).
					Warn("unknown configuration section")
			}
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found {
			c.lineEntry(lineno).Warn("configuration line has no '='")
			continue
		}
		name = strings.TrimSpace(name)
		value = unquote(strings.TrimSpace(value))

		if current == nil {
			// Either before any section header or inside an unknown
			// section, which was already reported.
			continue
		}
		if current.codec != nil {
			current.codec.ReadLine(name, value)
			continue
		}

		opt := current.Option(name)
		if opt == nil {
			c.lineEntry(lineno).WithField("option", current.name+"."+name).
				Warn("unknown option")
			continue
		}
		if err := opt.Set(value); err != nil {
			// Prior value stays in place; the read continues.
			c.lineEntry(lineno).WithError(err).Warn("invalid option value")
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", c.path, err)
	}
	return nil
}

// Save writes every section to the backing file: scalar sections as one
// name = value line per option in declaration order, structured sections
// through their codec. The content lands in a temporary file in the same
// directory and is renamed into place, so a failed write never truncates
// the previous file. The file is created user-only (0600): the registry
// can hold credentials such as the proxy password.
func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	w := bufio.NewWriter(tmp)
	fmt.Fprintf(w, "#\n# %s: parley configuration\n#\n# Saved automatically; hand edits survive until the next save.\n#\n", filepath.Base(c.path))

	for _, s := range c.sections {
		fmt.Fprintf(w, "\n[%s]\n", s.name)
		if s.codec != nil {
			s.codec.WriteLines(func(name, value string) {
				fmt.Fprintf(w, "%s = %s\n", name, value)
			})
			continue
		}
		for _, o := range s.options {
			if o.typ == TypeString {
				fmt.Fprintf(w, "%s = \"%s\"\n", o.name, o.strVal)
			} else {
				fmt.Fprintf(w, "%s = %s\n", o.name, o.String())
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	c.logger.WithField("file", c.path).Info("configuration saved")
	return nil
}

func (c *Config) lineEntry(lineno int) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"file": c.path,
		"line": lineno,
	})
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
