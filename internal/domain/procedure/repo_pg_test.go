package procedure

import (
	"os"
	"strings"
	"testing"
)

// The repository's column list must stay in sync with the DDL that creates
// the procedures table.
func TestMigrationDeclaresRepositoryColumns(t *testing.T) {
	schema, err := os.ReadFile("../../../migrations/001_core.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	start := strings.Index(string(schema), "CREATE TABLE procedures")
	if start < 0 {
		t.Fatal("procedures table not found in migration")
	}
	ddl := string(schema)[start:]
	ddl = ddl[:strings.Index(ddl, ");")]

	for _, col := range strings.Split(procCols, ", ") {
		if !strings.Contains(ddl, col) {
			t.Errorf("column %q missing from procedures DDL", col)
		}
	}
}
