/*
 * modules.go, part of gocryst.
 *
 *
 * Copyright 2025 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goCryst is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var calcStyles = []struct {
	name, desc string
}{
	{"refine", "lattice parameters and elastic constants of a structure"},
	{"pointdefect", "formation energy and stability of a point defect"},
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available calculation styles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range calcStyles {
			fmt.Printf("%-14s %s\n", s.name, s.desc)
		}
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
