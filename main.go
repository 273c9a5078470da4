package main

import (
	_ "github.com/Tnecniv1/mathbank-sub001/src/admintools"
	_ "github.com/Tnecniv1/mathbank-sub001/src/devstorage"
	_ "github.com/Tnecniv1/mathbank-sub001/src/migration"
	"github.com/Tnecniv1/mathbank-sub001/src/website"
)

func main() {
	website.WebsiteCommand.Execute()
}
