package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	swartzkripVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())
	b.Test().Does(Go().TestAll())

	cli := NewAppBuild("swartzkrip", "cmd/swartzkrip", swartzkripVersion)
	cli.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", swartzkripVersion).
			CgoEnabled(false)
	})
	cli.Variant("windows", "amd64")
	cli.Variant("linux", "amd64")
	cli.Variant("linux", "arm64")
	cli.Variant("darwin", "arm64")
	b.ImportApp(cli)

	b.Execute()
}
