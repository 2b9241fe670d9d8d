package test

import (
	. "github.com/onsi/gomega"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// DataDir returns the absolute path of the shared test/data fixtures.
func DataDir() string {
	_, thisFile, _, _ := runtime.Caller(0)

	var dir string
	if strings.Contains(thisFile, "vendor") {
		dir = path.Join(thisFile, "../../../../../..", "test", "data")
	} else {
		dir = path.Join(thisFile, "..", "data")
	}

	abs, err := filepath.Abs(dir)
	Expect(err).NotTo(HaveOccurred())

	return abs
}

func FilePath(fileName string) string {
	urlPath := filepath.Join(DataDir(), fileName)
	Expect(urlPath).To(BeAnExistingFile())
	return urlPath
}

func FileToBytes(fileName string) ([]byte, error) {
	return os.ReadFile(FilePath(fileName))
}
