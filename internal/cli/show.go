/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"fmt"

	"github.com/rulego/dataquery/utils/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newShowCommand(a *app) *cobra.Command {
	var page, pageSize int
	var search, sortBy string
	var desc bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the data one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageSize <= 0 {
				pageSize = a.cfg.PageSize
			}
			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			if sortBy != "" && !ds.HasColumn(sortBy) {
				return fmt.Errorf("unknown sort column %q", sortBy)
			}
			if search != "" {
				ds = ds.Search(search)
			}
			if sortBy != "" {
				tag, err := language.Parse(a.cfg.Locale)
				if err != nil {
					return fmt.Errorf("invalid locale %q: %w", a.cfg.Locale, err)
				}
				ds = ds.SortBy(sortBy, desc, tag)
			}

			pages := ds.Pages(pageSize)
			if page < 1 || (pages > 0 && page > pages) {
				return fmt.Errorf("page %d out of range (1-%d)", page, pages)
			}
			w := cmd.OutOrStdout()
			table.WriteRows(w, ds.Page(page, pageSize), ds.Columns)
			fmt.Fprintf(w, "page %d of %d, %d rows total\n", page, pages, ds.Len())
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringVar(&search, "search", "", "keep rows where any cell contains the text, ignoring case")
	cmd.Flags().StringVar(&sortBy, "sort", "", "column to order rows by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}
