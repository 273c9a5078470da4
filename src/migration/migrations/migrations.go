package migrations

import (
	"github.com/Tnecniv1/mathbank-sub001/src/migration/types"
)

var All = make(map[types.MigrationVersion]types.Migration)

func registerMigration(m types.Migration) {
	All[m.Version()] = m
}
