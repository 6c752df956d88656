package main

import (
	"fmt"

	"github.com/mfields/blackjacksim/internal/results"
)

type AnalyzeCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Results files to summarize"`
}

func (c *AnalyzeCmd) Run(cli *CLI) error {
	loaded, err := results.LoadAll(c.Files)
	if err != nil {
		return err
	}

	for i, res := range loaded {
		summary, err := results.Summarize(res)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(renderSummary(res, summary))
	}
	return nil
}
