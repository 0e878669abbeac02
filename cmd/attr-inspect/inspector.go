package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/attrfile/pkg/catalog"
	"github.com/mash-protocol/attrfile/pkg/record"
	"github.com/mash-protocol/attrfile/pkg/snapshot"
	"github.com/mash-protocol/attrfile/pkg/store"
	"github.com/mash-protocol/attrfile/pkg/xmlcodec"
)

// loaded is one record held in memory, keyed by its file name. Exactly
// one of device/product is set.
type loaded struct {
	device  *record.DeviceRecord
	product *record.ProductRecord
}

// inspector handles the interactive command loop.
type inspector struct {
	store   *store.Store
	logger  *slog.Logger
	rl      *readline.Instance
	records map[string]*loaded
}

func newInspector(dir, catalogPath string, logger *slog.Logger) (*inspector, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "attr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	insp := &inspector{
		store:   store.New(dir),
		logger:  logger,
		rl:      rl,
		records: make(map[string]*loaded),
	}

	if catalogPath != "" {
		if err := insp.loadCatalog(catalogPath); err != nil {
			rl.Close()
			return nil, err
		}
	}

	return insp, nil
}

// loadCatalog preloads every record a catalog names.
func (i *inspector) loadCatalog(path string) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	for _, e := range cat.Devices {
		rec, err := i.store.LoadDevice(e.File)
		if err != nil {
			return err
		}
		i.records[e.File] = &loaded{device: rec}
	}
	for _, e := range cat.Products {
		rec, err := i.store.LoadProduct(e.File)
		if err != nil {
			return err
		}
		i.records[e.File] = &loaded{product: rec}
	}
	i.logger.Info("catalog loaded", "path", path, "records", len(i.records))
	return nil
}

func (i *inspector) Close() {
	i.rl.Close()
}

// Run starts the interactive command loop.
func (i *inspector) Run() {
	i.printHelp()

	for {
		line, err := i.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(i.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			i.printHelp()

		case "device", "d":
			i.cmdLoadDevice(args)

		case "product", "p":
			i.cmdLoadProduct(args)

		case "list", "l":
			i.cmdList()

		case "show", "s":
			i.cmdShow(args)

		case "name":
			i.cmdName(args)

		case "control":
			i.cmdControl(args)

		case "price":
			i.cmdPrice(args)

		case "discount":
			i.cmdDiscount(args)

		case "save":
			i.cmdSave(args)

		case "snapshot":
			i.cmdSnapshot()

		case "restore":
			i.cmdRestore()

		case "quit", "exit", "q":
			fmt.Fprintln(i.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(i.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (i *inspector) cmdLoadDevice(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: device <file>")
		return
	}
	rec, err := i.store.LoadDevice(args[0])
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Failed to load device: %v\n", err)
		return
	}
	i.records[args[0]] = &loaded{device: rec}
	i.showOne(args[0])
}

func (i *inspector) cmdLoadProduct(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: product <file>")
		return
	}
	rec, err := i.store.LoadProduct(args[0])
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Failed to load product: %v\n", err)
		return
	}
	i.records[args[0]] = &loaded{product: rec}
	i.showOne(args[0])
}

func (i *inspector) cmdList() {
	if len(i.records) == 0 {
		fmt.Fprintln(i.rl.Stdout(), "No records loaded")
		return
	}
	files := make([]string, 0, len(i.records))
	for f := range i.records {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		i.showOne(f)
	}
}

func (i *inspector) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: show <file>")
		return
	}
	if _, ok := i.records[args[0]]; !ok {
		fmt.Fprintf(i.rl.Stdout(), "Not loaded: %s\n", args[0])
		return
	}
	i.showOne(args[0])
}

func (i *inspector) showOne(file string) {
	l := i.records[file]
	switch {
	case l.device != nil:
		d := l.device
		fmt.Fprintf(i.rl.Stdout(), "%s: device %q %s=%s\n",
			file, d.Name, d.Control.Tag(), xmlcodec.FormatLeaf(d.Control.Value()))
	case l.product != nil:
		p := l.product
		discount := "none"
		if p.Discount != nil {
			discount = xmlcodec.FormatLeaf(*p.Discount)
		}
		fmt.Fprintf(i.rl.Stdout(), "%s: product %q %s=%s discount=%s\n",
			file, p.Name, p.Price.Tag(), xmlcodec.FormatLeaf(p.Price.Value()), discount)
	}
}

func (i *inspector) cmdName(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: name <file> <name>")
		return
	}
	l, ok := i.records[args[0]]
	if !ok {
		fmt.Fprintf(i.rl.Stdout(), "Not loaded: %s\n", args[0])
		return
	}
	name := strings.Join(args[1:], " ")
	if l.device != nil {
		l.device.Name = name
	} else {
		l.product.Name = name
	}
	i.showOne(args[0])
}

func (i *inspector) cmdControl(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: control <file> <Voltage|Power> <value>")
		return
	}
	l, ok := i.records[args[0]]
	if !ok || l.device == nil {
		fmt.Fprintf(i.rl.Stdout(), "Not a loaded device: %s\n", args[0])
		return
	}
	construct, ok := xmlcodec.ControlRegistry.Resolve(args[1])
	if !ok {
		fmt.Fprintf(i.rl.Stdout(), "Unknown control kind %q (one of %v)\n",
			args[1], xmlcodec.ControlRegistry.Tags())
		return
	}
	v, err := xmlcodec.ParseLeaf(args[2])
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Bad value: %v\n", err)
		return
	}
	l.device.Control = construct(v)
	i.showOne(args[0])
}

func (i *inspector) cmdPrice(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: price <file> <Dollars|Euros> <value>")
		return
	}
	l, ok := i.records[args[0]]
	if !ok || l.product == nil {
		fmt.Fprintf(i.rl.Stdout(), "Not a loaded product: %s\n", args[0])
		return
	}
	construct, ok := xmlcodec.PriceRegistry.Resolve(args[1])
	if !ok {
		fmt.Fprintf(i.rl.Stdout(), "Unknown price kind %q (one of %v)\n",
			args[1], xmlcodec.PriceRegistry.Tags())
		return
	}
	v, err := xmlcodec.ParseLeaf(args[2])
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Bad value: %v\n", err)
		return
	}
	l.product.Price = construct(v)
	i.showOne(args[0])
}

func (i *inspector) cmdDiscount(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: discount <file> [value]")
		return
	}
	l, ok := i.records[args[0]]
	if !ok || l.product == nil {
		fmt.Fprintf(i.rl.Stdout(), "Not a loaded product: %s\n", args[0])
		return
	}
	if len(args) == 1 {
		l.product.Discount = nil
	} else {
		v, err := xmlcodec.ParseLeaf(args[1])
		if err != nil {
			fmt.Fprintf(i.rl.Stdout(), "Bad value: %v\n", err)
			return
		}
		l.product.Discount = &v
	}
	i.showOne(args[0])
}

func (i *inspector) cmdSave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(i.rl.Stdout(), "Usage: save <file>")
		return
	}
	l, ok := i.records[args[0]]
	if !ok {
		fmt.Fprintf(i.rl.Stdout(), "Not loaded: %s\n", args[0])
		return
	}
	var err error
	if l.device != nil {
		err = i.store.SaveDevice(args[0], l.device)
	} else {
		err = i.store.SaveProduct(args[0], l.product)
	}
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Failed to save: %v\n", err)
		return
	}
	i.logger.Debug("record saved", "file", args[0])
	fmt.Fprintf(i.rl.Stdout(), "Saved %s\n", args[0])
}

func (i *inspector) cmdSnapshot() {
	var devices []*record.DeviceRecord
	var products []*record.ProductRecord
	for _, l := range i.records {
		if l.device != nil {
			devices = append(devices, l.device)
		} else {
			products = append(products, l.product)
		}
	}
	snap := snapshot.New(devices, products)
	if err := i.store.SaveSnapshot(snap); err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Failed to save snapshot: %v\n", err)
		return
	}
	fmt.Fprintf(i.rl.Stdout(), "Snapshot %s: %d device(s), %d product(s)\n",
		snap.SnapshotID, len(snap.Devices), len(snap.Products))
}

func (i *inspector) cmdRestore() {
	snap, err := i.store.LoadSnapshot()
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Failed to load snapshot: %v\n", err)
		return
	}
	if snap == nil {
		fmt.Fprintln(i.rl.Stdout(), "No snapshot in store")
		return
	}
	devices, err := snap.DeviceRecords()
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Bad snapshot: %v\n", err)
		return
	}
	products, err := snap.ProductRecords()
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "Bad snapshot: %v\n", err)
		return
	}
	fmt.Fprintf(i.rl.Stdout(), "Snapshot %s from %s:\n",
		snap.SnapshotID, snap.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, d := range devices {
		fmt.Fprintf(i.rl.Stdout(), "  device %q %s=%s\n",
			d.Name, d.Control.Tag(), xmlcodec.FormatLeaf(d.Control.Value()))
	}
	for _, p := range products {
		discount := "none"
		if p.Discount != nil {
			discount = xmlcodec.FormatLeaf(*p.Discount)
		}
		fmt.Fprintf(i.rl.Stdout(), "  product %q %s=%s discount=%s\n",
			p.Name, p.Price.Tag(), xmlcodec.FormatLeaf(p.Price.Value()), discount)
	}
}

func (i *inspector) printHelp() {
	fmt.Fprintln(i.rl.Stdout(), `
Attribute Exchange Inspector:
  Loading:
    device <file>               - Load a device record
    product <file>              - Load a product record
    list                        - List loaded records
    show <file>                 - Show a loaded record

  Editing:
    name <file> <name>          - Rename a record
    control <file> <kind> <val> - Set device control (Voltage, Power)
    price <file> <kind> <val>   - Set product price (Dollars, Euros)
    discount <file> [val]       - Set or clear a product discount

  Persistence:
    save <file>                 - Write a record back to its file
    snapshot                    - Capture loaded records to a snapshot
    restore                     - Show records from the stored snapshot

  quit                          - Exit`)
}
