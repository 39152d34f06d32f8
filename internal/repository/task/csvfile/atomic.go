package csvfile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"todoList/internal/models/task"
)

const defaultPerm fs.FileMode = 0o644

// writeFileAtomic пишет задачи во временный файл рядом с целевым и затем
// переименовывает его. Читатель видит либо старое, либо новое содержимое.
func writeFileAtomic(path string, tasks []*task.Task) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := encode(buf, tasks); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
