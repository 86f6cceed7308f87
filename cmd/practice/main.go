// Command practice runs the SQL lessons against an existing HR
// database and prints the results, optionally exporting them to an
// Excel workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/locvowork/hr_sql_practice/internal/bootstrap"
	"github.com/locvowork/hr_sql_practice/internal/lesson"
	"github.com/locvowork/hr_sql_practice/internal/logger"
	"github.com/locvowork/hr_sql_practice/pkg/export"
)

func main() {
	dbPath := flag.String("db", "", "Database file path (overrides HR_DB_PATH)")
	name := flag.String("lesson", "all", "Lesson to run: select, joins, aggregation, subqueries, all")
	exportPath := flag.String("export", "", "Optional .xlsx path to export the results")
	list := flag.Bool("list", false, "List the available lessons")
	flag.Parse()

	if *list {
		for _, l := range lesson.Lessons() {
			fmt.Printf("%-12s %s\n", l.Name, l.Description)
		}
		return
	}

	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx, bootstrap.Options{DBPath: *dbPath, ReadOnly: true}); err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	var lessons []lesson.Lesson
	if *name == "all" {
		lessons = lesson.Lessons()
	} else {
		l, ok := lesson.ByName(*name)
		if !ok {
			log.Fatalf("unknown lesson %q, try -list", *name)
		}
		lessons = []lesson.Lesson{l}
	}

	var all []lesson.Result
	for _, l := range lessons {
		fmt.Printf("=== Lesson: %s — %s ===\n\n", l.Name, l.Description)

		results, err := lesson.Run(ctx, app.DB, l)
		if err != nil {
			logger.ErrorLog(ctx, "Lesson failed", err)
			log.Fatal(err)
		}

		for _, res := range results {
			fmt.Println(lesson.FormatTable(res))
			fmt.Println(strings.Repeat("-", 50))
		}
		all = append(all, results...)
	}

	if *exportPath != "" {
		if err := export.Workbook(all, *exportPath); err != nil {
			logger.ErrorLog(ctx, "Export failed", err)
			log.Fatal(err)
		}
		fmt.Printf("✅ Results exported to %s\n", *exportPath)
	}
}
