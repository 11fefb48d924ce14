package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mxfkit/internal/essence"
)

type kindView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Generic string `json:"generic"`
	Label   string `json:"label"`
}

type kindDetail struct {
	kindView
	IsGeneric bool     `json:"is_generic"`
	Siblings  []string `json:"siblings"`
}

func newKindView(k essence.Kind) kindView {
	return kindView{
		ID:      int(k),
		Name:    k.Name(),
		Generic: k.Generic().Name(),
		Label:   k.Label(),
	}
}

func kindRow(v kindView) []string {
	return []string{strconv.Itoa(v.ID), v.Name, titleCaser.String(v.Generic), v.Label}
}

var kindHeaders = []string{"ID", "Name", "Generic", "Label"}
var kindAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}

func parseGenerics(values []string) ([]essence.Kind, error) {
	generics := make([]essence.Kind, 0, len(values))
	for _, value := range values {
		g, err := essence.ParseGeneric(value)
		if err != nil {
			return nil, fmt.Errorf("--generic: %w", err)
		}
		generics = append(generics, g)
	}
	return generics, nil
}

func containsKind(kinds []essence.Kind, k essence.Kind) bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var genericFlags []string
	var concreteOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List essence kinds compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generics, err := parseGenerics(genericFlags)
			if err != nil {
				return err
			}

			views := make([]kindView, 0, len(essence.Kinds()))
			rows := make([][]string, 0, len(essence.Kinds()))
			for _, k := range essence.Kinds() {
				if len(generics) > 0 && !containsKind(generics, k.Generic()) {
					continue
				}
				if concreteOnly && k.IsGeneric() {
					continue
				}
				view := newKindView(k)
				views = append(views, view)
				rows = append(rows, kindRow(view))
			}

			return ctx.writeListing(cmd, listing{headers: kindHeaders, rows: rows, aligns: kindAligns}, views)
		},
	}

	cmd.Flags().StringSliceVar(&genericFlags, "generic", nil, "Only kinds under these generic kinds (picture, sound, data, unknown)")
	cmd.Flags().BoolVar(&concreteOnly, "concrete", false, "Omit the generic kinds themselves")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind>",
		Short: "Describe one essence kind by name, label or ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := essence.Parse(args[0])
			if err != nil {
				return err
			}

			detail := kindDetail{kindView: newKindView(k), IsGeneric: k.IsGeneric()}
			group := k.Generic()
			for _, sibling := range essence.ByGeneric(group) {
				if sibling != k {
					detail.Siblings = append(detail.Siblings, sibling.Name())
				}
			}
			if detail.Siblings == nil {
				detail.Siblings = []string{}
			}

			rows := [][]string{
				{"ID", strconv.Itoa(detail.ID)},
				{"Name", detail.Name},
				{"Label", detail.Label},
				{"Generic", titleCaser.String(detail.Generic)},
				{"Generic kind", yesNo(detail.IsGeneric)},
				{"Siblings", strconv.Itoa(len(detail.Siblings))},
			}
			return ctx.writeListing(cmd, listing{headers: []string{"Field", "Value"}, rows: rows}, detail)
		},
	}
}
