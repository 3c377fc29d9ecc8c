package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/pr-verdict/internal/core"
)

func TestSummarizeDiff(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want core.DiffStats
	}{
		{
			name: "empty diff",
			diff: "",
			want: core.DiffStats{},
		},
		{
			name: "single file",
			diff: `diff --git a/main.go b/main.go
index 83db48f..bf269f4 100644
--- a/main.go
+++ b/main.go
@@ -1,4 +1,5 @@
 package main
-import "fmt"
+import (
+	"fmt"
+)
`,
			want: core.DiffStats{Files: 1, Hunks: 1, Additions: 3, Deletions: 1},
		},
		{
			name: "two files with several hunks",
			diff: `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ -1 +1 @@
-old
+new
@@ -10,2 +10,3 @@ func main() {
 ctx
+added
diff --git a/b.txt b/b.txt
new file mode 100644
--- /dev/null
+++ b/b.txt
@@ -0,0 +1 @@
+hello
\ No newline at end of file
`,
			want: core.DiffStats{Files: 2, Hunks: 3, Additions: 3, Deletions: 1},
		},
		{
			name: "malformed hunk header is skipped",
			diff: `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ garbage @@
+ignored
`,
			want: core.DiffStats{Files: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeDiff(tt.diff, discardLogger()))
		})
	}
}
