package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	callCount = make(map[string]int)
	countLock sync.Mutex
)

// ValidateSnapshot compares obj, as indented JSON, to testdata/<test>-<n>.json
// n counts the snapshots taken by the test so far and restarts at 0 on every
// run of the test. A missing file is written from obj and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	call := nextCall(t, name)

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot: %v", err)
		}

		if err := write(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot: %v", err)
		}

		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextCall(t *testing.T, name string) int {
	countLock.Lock()
	defer countLock.Unlock()

	call := callCount[name]
	if call == 0 {
		t.Cleanup(func() {
			countLock.Lock()
			delete(callCount, name)
			countLock.Unlock()
		})
	}

	callCount[name] = call + 1
	return call
}

func write(filename string, b []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(b, '\n'), 0644)
}
