package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/impulsa/seguimiento/core/student"
)

func (cli *commandLine) report() error {
	ctx := context.Background()

	if _, err := cli.stuSvc.Load(ctx); err != nil {
		return errors.Wrap(err, "loading roster")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPOINTS\tEXPECTED\tSTATUS\tBADGE")
	for _, stu := range cli.stuSvc.Students() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%s\t%s\n",
			stu.ID, stu.Name, stu.TotalPoints, stu.ExpectedPoints, stu.Status, stu.RankBadge)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := cli.stuSvc.Stats()
	fmt.Printf("\n%d student(s), avg %.1f pts (expected %.1f today), %d at risk\n",
		stats.Total, stats.AveragePoints, stats.ExpectedPoints, stats.ByStatus[student.StatusRiesgo])
	return nil
}
