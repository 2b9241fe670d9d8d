package integration_test

import (
	"fmt"
	"github.com/onsi/gomega/gexec"
	"sync"
)

const (
	gitCommit  = "some-git-commit"
	gitVersion = "some-git-version"
)

var (
	onceBuild  sync.Once
	binaryPath string
)

func buildBinary() error {
	var err error
	onceBuild.Do(func() {
		binaryPath, err = gexec.Build(
			"github.com/kardolus/stubexpect/cmd/stubcheck",
			"-ldflags",
			fmt.Sprintf("-X main.GitCommit=%s -X main.GitVersion=%s", gitCommit, gitVersion))
	})
	return err
}
