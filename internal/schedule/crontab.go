// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"fmt"
	"strings"

	"github.com/pdiddy/batchconv/pkg/types"
)

const binCrontab = "crontab"

// tagFor marks a crontab line as owned by batchconv under a task name, so
// replacement and removal can find it again.
func tagFor(name string) string {
	return "# batchconv:" + name
}

// crontabInstaller manages a managed line in the calling user's crontab.
// In replace mode (the default) installation rewrites the crontab with the
// previously managed lines for the task dropped, keeping exactly one entry
// per task name. In append mode it reproduces the legacy behavior of
// appending unconditionally, and duplicate lines accumulate across runs.
type crontabInstaller struct {
	exec    executor
	replace bool
}

func newCrontabInstaller(exec executor, replace bool) *crontabInstaller {
	return &crontabInstaller{exec: exec, replace: replace}
}

func (*crontabInstaller) Name() string { return binCrontab }

// current returns the crontab lines. A missing crontab ("no crontab for
// user") is treated as empty; any other read failure is returned as an
// error so a partial read can never be written back and wipe unmanaged
// entries.
func (c *crontabInstaller) current() ([]string, error) {
	out, err := c.exec.Output(binCrontab, "-l")
	if err != nil {
		if strings.Contains(err.Error(), "no crontab") {
			return nil, nil
		}
		return nil, fmt.Errorf("reading crontab: %w", err)
	}
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (c *crontabInstaller) write(lines []string) error {
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := c.exec.RunInput(strings.NewReader(content), binCrontab, "-"); err != nil {
		return fmt.Errorf("updating crontab: %w", err)
	}
	return nil
}

// withoutTagged filters out lines carrying the tag for name.
func withoutTagged(lines []string, name string) []string {
	tag := tagFor(name)
	kept := lines[:0:0]
	for _, l := range lines {
		if !strings.HasSuffix(strings.TrimRight(l, " \t"), tag) {
			kept = append(kept, l)
		}
	}
	return kept
}

func (c *crontabInstaller) Install(desc types.TaskDescriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	expr, err := CronLine(desc.Recurrence)
	if err != nil {
		return err
	}

	lines, err := c.current()
	if err != nil {
		return err
	}
	if c.replace {
		lines = withoutTagged(lines, desc.Name)
	}
	lines = append(lines, fmt.Sprintf("%s %s %s", expr, desc.CommandLine(), tagFor(desc.Name)))
	return c.write(lines)
}

func (c *crontabInstaller) Remove(name string) error {
	lines, err := c.current()
	if err != nil {
		return err
	}
	kept := withoutTagged(lines, name)
	if len(kept) == len(lines) {
		return nil
	}
	return c.write(kept)
}

func (c *crontabInstaller) Entry(name string) (string, error) {
	lines, err := c.current()
	if err != nil {
		return "", err
	}
	tag := tagFor(name)
	for _, l := range lines {
		if strings.HasSuffix(strings.TrimRight(l, " \t"), tag) {
			return l, nil
		}
	}
	return "", nil
}
