// FILE: lixenwraith/devlog/storage.go
package devlog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// dayFilePath returns <directory>/<yyyy-MM-dd>.<extension> for the local date of t
func dayFilePath(c *Config, t time.Time) string {
	return filepath.Join(c.Directory, t.Format(dayFileFormat)+"."+c.Extension)
}

// ensureFile creates the directory and the file if they do not exist
func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmtErrorf("failed to create log directory '%s': %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmtErrorf("failed to create log file '%s': %w", path, err)
	}
	return f.Close()
}

// dayFile is a day file or one of its size-rolled parts found on disk
type dayFile struct {
	name string
	day  time.Time
}

// listDayFiles returns files in dir whose name starts with a date and ends with ext, oldest first
func listDayFiles(dir, ext string, loc *time.Location) ([]dayFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmtErrorf("failed to read log directory '%s': %w", dir, err)
	}

	targetExt := "." + ext
	var files []dayFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, targetExt) || len(name) < len(dayFileFormat) {
			continue
		}
		day, err := time.ParseInLocation(dayFileFormat, name[:len(dayFileFormat)], loc)
		if err != nil {
			continue
		}
		files = append(files, dayFile{name: name, day: day})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].day.Equal(files[j].day) {
			return files[i].name < files[j].name
		}
		return files[i].day.Before(files[j].day)
	})
	return files, nil
}

// cleanExpiredLogs removes day files, and their rolled parts, dated before the
// retention window ending on now's date. It returns the number of files removed.
func (l *Logger) cleanExpiredLogs(now time.Time) (int, error) {
	c := l.getConfig()
	if c.RetentionDays <= 0 {
		return 0, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := today.AddDate(0, 0, -int(c.RetentionDays-1))

	files, err := listDayFiles(c.Directory, c.Extension, now.Location())
	if err != nil {
		return 0, fmtErrorf("failed to list logs for retention cleanup: %w", err)
	}

	var deletedCount int
	for _, f := range files {
		if !f.day.Before(cutoff) {
			break
		}
		filePath := filepath.Join(c.Directory, f.name)
		if err := os.Remove(filePath); err != nil {
			l.internalLog("failed to remove expired log file '%s': %v", filePath, err)
			continue
		}
		deletedCount++
		l.state.TotalDeletions.Inc()
	}

	return deletedCount, nil
}

// pruneRolledParts keeps the newest max_backups size-rolled parts of each day
// and removes the rest. The day file itself is never removed here.
func (l *Logger) pruneRolledParts() (int, error) {
	c := l.getConfig()
	if c.MaxBackups <= 0 {
		return 0, nil
	}

	files, err := listDayFiles(c.Directory, c.Extension, time.Local)
	if err != nil {
		return 0, fmtErrorf("failed to list logs for backup pruning: %w", err)
	}

	// Parts sort by their lumberjack timestamp within a day, oldest first
	partsByDay := make(map[string][]string)
	var days []string
	for _, f := range files {
		day := f.name[:len(dayFileFormat)]
		if f.name == day+"."+c.Extension {
			continue
		}
		if _, seen := partsByDay[day]; !seen {
			days = append(days, day)
		}
		partsByDay[day] = append(partsByDay[day], f.name)
	}

	var deletedCount int
	for _, day := range days {
		parts := partsByDay[day]
		excess := len(parts) - int(c.MaxBackups)
		for i := 0; i < excess; i++ {
			filePath := filepath.Join(c.Directory, parts[i])
			if err := os.Remove(filePath); err != nil {
				l.internalLog("failed to remove rolled log file '%s': %v", filePath, err)
				continue
			}
			deletedCount++
			l.state.TotalDeletions.Inc()
		}
	}
	return deletedCount, nil
}

// ReadEntries decrypts an encrypted day file, one entry per line
func ReadEntries(path string, enc Encrypter) ([]string, error) {
	var entries []string
	_, err := scanEntries(path, enc, func(entry string) error {
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

// DecryptFile writes the plain text of every entry in an encrypted day file to w
// and returns the number of entries written
func DecryptFile(path string, enc Encrypter, w io.Writer) (int, error) {
	return scanEntries(path, enc, func(entry string) error {
		_, err := io.WriteString(w, entry)
		return err
	})
}

// scanEntries feeds each decrypted line of path to fn
func scanEntries(path string, enc Encrypter, fn func(string) error) (int, error) {
	if enc == nil {
		return 0, fmtErrorf("encrypter cannot be nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntryLineBytes)

	count := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		plain, err := enc.Decrypt(line)
		if err != nil {
			return count, fmtErrorf("failed to decrypt line %d of '%s': %w", lineNo, path, err)
		}
		if err := fn(plain); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmtErrorf("failed to read log file '%s': %w", path, err)
	}
	return count, nil
}
