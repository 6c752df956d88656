package main

import (
	"fmt"

	"github.com/mfields/blackjacksim/internal/strategy"
)

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run(cli *CLI) error {
	fmt.Println(sectionStyle.Render("Selection strategies"))
	for _, name := range strategy.SelectionNames() {
		s, err := strategy.NewSelection(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-14s", name)), s.Description())
	}

	fmt.Println(sectionStyle.Render("\nCounting strategies"))
	for _, name := range strategy.CountingNames() {
		s, err := strategy.NewCounting(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-14s", name)), s.Description())
	}

	fmt.Println(sectionStyle.Render("\nBetting strategies"))
	for _, name := range strategy.BettingNames() {
		s, err := strategy.NewBetting(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-14s", name)), s.Description())
	}

	return nil
}
