// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/edgeindex"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

// solve runs the whole pipeline on one input file and reports to w.
func solve(w io.Writer, log logrus.FieldLogger, path string) error {
	start := time.Now()
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tiles, err := tile.ParseAll(string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	idx, err := edgeindex.Build(tiles)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"tiles": idx.Len(), "side": idx.Side()}).Info("Indexed tiles")

	fmt.Fprintf(w, "Tiles: %d\n", idx.Len())
	if err := writeAdjacency(w, idx); err != nil {
		return err
	}
	cls := idx.Classify()
	fmt.Fprintf(w, "Corners: %s\n", joinIDs(cls.Corners))
	fmt.Fprintf(w, "Corner product: %d\n", idx.CornerProduct())

	p, err := assemble.New(idx, assemble.WithLogger(log)).Run()
	if err != nil {
		return err
	}
	writeLayout(w, p.Layout())

	img, err := mosaic.Stitch(p)
	switch {
	case errors.Is(err, mosaic.ErrNoInterior):
		log.WithField("side", p.Side()).Info("Tiles have no interior, skipping sea monster search")
		img = nil
	case err != nil:
		return err
	}
	var res mosaic.Result
	if img != nil {
		res, err = mosaic.Search(img, mosaic.SeaMonster)
		if err != nil && !errors.Is(err, mosaic.ErrNotFound) {
			return err
		}
	}
	fmt.Fprintf(w, "Sea monsters: %d\n", res.Count())
	fmt.Fprintf(w, "Roughness: %d\n", res.Roughness)

	log.WithFields(logrus.Fields{
		"image":   len(img),
		"op":      res.Op.String(),
		"elapsed": time.Since(start),
	}).Info("Finished")

	return nil
}

func writeAdjacency(w io.Writer, idx *edgeindex.Index) error {
	rows := make([][]string, 0, idx.Len())
	for _, id := range idx.IDs() {
		nbrs, err := idx.NeighborIDs(id)
		if err != nil {
			return err
		}
		rows = append(rows, []string{strconv.FormatUint(id, 10), joinIDs(nbrs), edgeindex.Kind(len(nbrs))})
	}

	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Tile", "Neighbors", "Kind"})
	table.AppendBulk(rows)
	table.Render()

	return nil
}

func writeLayout(w io.Writer, layout [][]uint64) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetRowLine(true)
	for _, row := range layout {
		cells := make([]string, len(row))
		for i, id := range row {
			cells[i] = strconv.FormatUint(id, 10)
		}
		table.Append(cells)
	}
	table.Render()
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}

	return strings.Join(parts, " ")
}
