package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	repo "todoList/internal/repository"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

const (
	lockSuffix     = ".lock"
	lockRetryDelay = 25 * time.Millisecond
	slowOperation  = 100 * time.Millisecond
)

var errLockNotAcquired = errors.New("блокировка не получена")

// Storage хранит все задачи в одном CSV файле. Каждое изменение перечитывает
// и целиком перезаписывает файл под эксклюзивной блокировкой.
//
// Блокировка берётся на соседний файл <path>.lock: сам файл данных
// заменяется через rename, и блокировка на его inode терялась бы.
type Storage struct {
	path string
	lock *flock.Flock
	mtx  *sync.Mutex
}

func New(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("путь к хранилищу не задан")
	}
	return &Storage{
		path: path,
		lock: flock.New(path + lockSuffix),
		mtx:  &sync.Mutex{},
	}, nil
}

func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		logger.Warn("Repository: Каталог хранилища недоступен", zap.Error(err), zap.String("dir", dir))
		return &repo.IOError{Op: "проверка каталога", Path: s.path, Err: err}
	}
	if !info.IsDir() {
		return &repo.IOError{Op: "проверка каталога", Path: s.path, Err: fmt.Errorf("%s не является каталогом", dir)}
	}

	unlock, err := s.acquire(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.load(); err != nil {
		return err
	}
	logger.Info("Repository: Хранилище доступно", zap.String("path", s.path))
	return nil
}

// Load читает все задачи под разделяемой блокировкой.
// Если файла ещё нет, возвращается пустой набор.
func (s *Storage) Load(ctx context.Context) ([]*task.Task, error) {
	start := time.Now()

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Repository: Файл хранилища отсутствует", zap.String("path", s.path))
		return []*task.Task{}, nil
	}

	unlock, err := s.acquire(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tasks, err := s.load()
	if err != nil {
		logger.Warn("Repository: Не удалось прочитать задачи", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	s.warnIfSlow("load", start)
	return tasks, nil
}

// Save полностью заменяет содержимое хранилища.
func (s *Storage) Save(ctx context.Context, tasks []*task.Task) error {
	start := time.Now()

	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.save(tasks); err != nil {
		logger.Warn("Repository: Не удалось записать задачи", zap.Error(err), zap.String("path", s.path))
		return err
	}

	s.warnIfSlow("save", start)
	return nil
}

// Mutate держит эксклюзивную блокировку на всём цикле чтение-изменение-запись,
// поэтому параллельные вызовы из разных процессов не теряют изменения друг друга.
func (s *Storage) Mutate(ctx context.Context, fn repo.MutateFunc) error {
	start := time.Now()

	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := s.load()
	if err != nil {
		logger.Warn("Repository: Не удалось прочитать задачи", zap.Error(err), zap.String("path", s.path))
		return err
	}

	next, changed, err := fn(tasks)
	if err != nil {
		return err
	}
	if !changed {
		logger.Debug("Repository: Изменений нет, запись пропущена", zap.String("path", s.path))
		return nil
	}

	if err := s.save(next); err != nil {
		logger.Warn("Repository: Не удалось записать задачи", zap.Error(err), zap.String("path", s.path))
		return err
	}

	s.warnIfSlow("mutate", start)
	return nil
}

func (s *Storage) load() ([]*task.Task, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*task.Task{}, nil
	}
	if err != nil {
		return nil, &repo.IOError{Op: "открытие", Path: s.path, Err: err}
	}
	defer file.Close()

	return decode(file, s.path)
}

func (s *Storage) save(tasks []*task.Task) error {
	if err := writeFileAtomic(s.path, tasks); err != nil {
		return &repo.IOError{Op: "запись", Path: s.path, Err: err}
	}
	logger.Debug("Repository: Задачи записаны", zap.String("path", s.path), zap.Int("count", len(tasks)))
	return nil
}

// acquire блокирует вызывающего до получения блокировки. Таймаута нет,
// прервать ожидание можно только отменой ctx.
func (s *Storage) acquire(ctx context.Context, exclusive bool) (func(), error) {
	s.mtx.Lock()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err == nil && !locked {
		err = errLockNotAcquired
	}
	if err != nil {
		s.mtx.Unlock()
		logger.Warn("Repository: Ошибка блокировки", zap.Error(err), zap.String("lock", s.lock.Path()), zap.Bool("exclusive", exclusive))
		return nil, &repo.IOError{Op: "блокировка", Path: s.path, Err: err}
	}

	return func() {
		if err := s.lock.Unlock(); err != nil {
			logger.Warn("Repository: Ошибка снятия блокировки", zap.Error(err), zap.String("lock", s.lock.Path()))
		}
		s.mtx.Unlock()
	}, nil
}

func (s *Storage) warnIfSlow(op string, start time.Time) {
	if time.Since(start) > slowOperation {
		logger.Warn("Repository: Медленная операция", zap.String("op", op), zap.Duration("ms", time.Since(start)))
	}
}
