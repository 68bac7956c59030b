package storage

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// solutionKey: the cache key for a puzzle's solution.  The
// puzzle text itself is the natural key, since two puzzles with
// the same text have the same solutions.
func solutionKey(text string) string {
	return "solution:" + text
}

// CachedSolution looks up the cached solution for a puzzle text.
// The second return is false when the cache has no entry.
func CachedSolution(text string) (string, bool, error) {
	var solution string
	found := false
	err := rdExecute(func(conn redis.Conn) error {
		val, err := redis.String(conn.Do("GET", solutionKey(text)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cache read of %q failed: %w", text, err)
		}
		solution, found = val, true
		return nil
	})
	return solution, found, err
}

// CacheSolution saves the solution for a puzzle text.  A
// positive ttl bounds the entry's lifetime; a zero ttl caches
// it until the cache is cleared.
func CacheSolution(text, solution string, ttl time.Duration) error {
	return rdExecute(func(conn redis.Conn) error {
		var err error
		if ttl > 0 {
			_, err = conn.Do("SETEX", solutionKey(text), int(ttl.Seconds()), solution)
		} else {
			_, err = conn.Do("SET", solutionKey(text), solution)
		}
		if err != nil {
			return fmt.Errorf("cache write of %q failed: %w", text, err)
		}
		return nil
	})
}
