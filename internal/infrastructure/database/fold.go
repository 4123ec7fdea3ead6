package database

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// FoldFunc lowercases text the same way strings.ToLower does. SQLite's
// built-in LOWER only folds ASCII letters.
const FoldFunc = "catalog_fold"

var registerFold = sync.OnceValue(func() error {
	return gosqlite.RegisterDeterministicScalarFunction(FoldFunc, 1, fold)
})

func fold(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}

// LowerExpr wraps a quoted column in the dialect's Unicode-aware lowercase
// function.
func LowerExpr(db *gorm.DB, quotedColumn string) string {
	if db.Dialector.Name() == DriverSQLite {
		return FoldFunc + "(" + quotedColumn + ")"
	}
	return "LOWER(" + quotedColumn + ")"
}
