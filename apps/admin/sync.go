package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

func (cli *commandLine) sync(force bool) error {
	ctx := context.Background()

	if _, err := cli.stuSvc.Load(ctx); err != nil {
		return errors.Wrap(err, "loading roster")
	}

	res, err := cli.stuSvc.Save(ctx, force)
	if err != nil {
		return errors.Wrap(err, "saving roster")
	}

	if res.NothingToSave {
		fmt.Println("nothing to save: no local changes since the last sync")
		return nil
	}
	if len(res.Conflicts) > 0 {
		fmt.Printf("%d conflict(s) detected:\n", len(res.Conflicts))
		for _, c := range res.Conflicts {
			fmt.Printf("- #%d %s\n%s\n", c.ID, c.Name, c.Diff)
		}
		if !res.Saved {
			fmt.Println("save paused; rerun with -force to keep local values for the conflicting records")
			return nil
		}
	}
	fmt.Printf("saved (op %s)\n", res.OpID)
	return nil
}
