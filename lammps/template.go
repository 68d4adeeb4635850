/*
 * template.go, part of gocryst.
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

package lammps

import (
	"fmt"
	"strings"
)

// FillTemplate replaces every <key> marker in template with the value
// of vars["key"], formatted with fmt.Sprint, and returns the filled
// text. A marker whose key is not in vars, or an opening delimiter with
// no closing one on the same line, is an error. Delimiters other than
// angle brackets can be given through open and close.
func FillTemplate(template string, vars map[string]interface{}, open, close string) (string, error) {
	lines := strings.Split(template, "\n")
	for n, line := range lines {
		for strings.Contains(line, open) {
			i := strings.Index(line, open)
			rest := line[i+len(open):]
			j := strings.Index(rest, close)
			if j < 0 {
				return "", Error{Message: ErrBadTemplate, Extra: fmt.Sprintf("unterminated %q on line %d: %s", open, n+1, line), deco: []string{"FillTemplate"}, critical: true}
			}
			key := rest[:j]
			val, ok := vars[key]
			if !ok {
				return "", Error{Message: ErrBadTemplate, Extra: fmt.Sprintf("no value given for template key %q (line %d)", key, n+1), deco: []string{"FillTemplate"}, critical: true}
			}
			line = line[:i] + fmt.Sprint(val) + rest[j+len(close):]
		}
		lines[n] = line
	}
	return strings.Join(lines, "\n"), nil
}
