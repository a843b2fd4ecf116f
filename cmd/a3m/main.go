// 12 Oct 2026

package main

import "github.com/lindseyguan/a3mtools/pkg/cli"

func main() {
	cli.Execute()
}
