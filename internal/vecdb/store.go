package vecdb

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
)

// Store is a leveldb-backed word-vector database: word → float32 values
// packed little-endian. It serves lookups without loading the whole
// vector file in memory.
type Store struct {
	db *leveldb.DB
}

func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put stores the vector for word.
func (s *Store) Put(word string, vec []float32) error {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return s.db.Put([]byte(word), buf, nil)
}

// Get returns the vector for word, or ok=false when absent.
func (s *Store) Get(word string) ([]float32, bool, error) {
	buf, err := s.db.Get([]byte(word), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(buf)%4 != 0 {
		return nil, false, fmt.Errorf("corrupt vector for %q: %d bytes", word, len(buf))
	}
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec, true, nil
}

// Count iterates the database and returns the number of stored words.
func (s *Store) Count() (int, error) {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

// ImportFile loads a vector text file into the store and returns the
// number of imported words. An optional "<count> <dim>" header is
// skipped; every row must match the first row's dimensionality.
func ImportFile(log *slog.Logger, vectorPath string, s *Store) (int, error) {
	f, err := os.Open(vectorPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line, imported, dim := 0, 0, 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if line == 1 && len(fields) == 2 {
			if _, err1 := strconv.Atoi(fields[0]); err1 == nil {
				if _, err2 := strconv.Atoi(fields[1]); err2 == nil {
					continue
				}
			}
		}
		if dim == 0 {
			dim = len(fields) - 1
		} else if len(fields)-1 != dim {
			return imported, fmt.Errorf("%s:%d: dimension mismatch: %d != %d", vectorPath, line, len(fields)-1, dim)
		}
		vec := make([]float32, dim)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return imported, fmt.Errorf("%s:%d: %w", vectorPath, line, err)
			}
			vec[i] = float32(v)
		}
		if err := s.Put(fields[0], vec); err != nil {
			return imported, err
		}
		imported++
		if imported%10000 == 0 {
			log.Info("vectors imported", "count", imported)
		}
	}
	if err := sc.Err(); err != nil {
		return imported, err
	}
	log.Info("import finished", "count", imported, "dim", dim)
	return imported, nil
}
