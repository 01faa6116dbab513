// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/adsfusion/adsfusion/pkg/auth"
	"github.com/adsfusion/adsfusion/pkg/shareapp"
)

// The console is the stand-in for the site's pages: it reads store
// state and invokes store operations, and it runs the form validation
// pass before calling the application store, which itself validates
// nothing.

const consoleHelp = `commands:
  signup <name> <email> <password>
  login <email> <password>
  logout
  forgot <email>
  whoami
  apply <field>=<value> ...      submit a share application
  list [query]                   list applications, optionally filtered
  update <id> <field>=<value> ... edit an application
  delete <id>
  export [query]                 write share_applications.csv
  help
  exit`

type console struct {
	out  io.Writer
	auth *auth.Store
	apps *shareapp.Store
}

// runConsole reads commands until exit or EOF. It returns nil on a
// clean exit so main can shut down quietly.
func runConsole(in io.Reader, out io.Writer, authStore *auth.Store, appStore *shareapp.Store) error {
	c := &console{out: out, auth: authStore, apps: appStore}

	fmt.Fprintln(out, "AdsFusion console. Type 'help' for commands.")
	c.whoami()

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && c.run(line) {
			return nil
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

// run dispatches one command line. It returns true when the user asked
// to exit.
func (c *console) run(line string) bool {
	args := splitArgs(line)
	cmd, args := args[0], args[1:]

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
	case "signup":
		c.signup(args)
	case "login":
		c.login(args)
	case "logout":
		c.auth.Logout()
		fmt.Fprintln(c.out, "signed out")
	case "forgot":
		c.forgot(args)
	case "whoami":
		c.whoami()
	case "apply":
		c.apply(args)
	case "list":
		c.list(args)
	case "update":
		c.update(args)
	case "delete":
		c.delete(args)
	case "export":
		c.export(args)
	default:
		fmt.Fprintf(c.out, "unknown command %q, try 'help'\n", cmd)
	}
	return false
}

func (c *console) signup(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.out, "usage: signup <name> <email> <password>")
		return
	}
	u, err := c.auth.Signup(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Welcome, %s\n", u.Name)
}

func (c *console) login(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: login <email> <password>")
		return
	}
	u, err := c.auth.Login(args[0], args[1])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Welcome back, %s\n", u.Name)
}

func (c *console) forgot(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: forgot <email>")
		return
	}
	if err := c.auth.ForgotPassword(args[0]); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Password reset instructions sent to %s\n", args[0])
}

func (c *console) whoami() {
	u := c.auth.User()
	if u == nil {
		fmt.Fprintln(c.out, "not signed in")
		return
	}
	fmt.Fprintf(c.out, "Signed in as %s <%s>\n", u.Name, u.Email)
}

func (c *console) apply(args []string) {
	app := shareapp.Application{SharesApplied: 1} // the form's default
	if !c.fill(&app, args) {
		return
	}
	if !c.validated(app) {
		return
	}
	created := c.apps.Create(app)
	fmt.Fprintf(c.out, "application %s received\n", created.ID)
}

func (c *console) list(args []string) {
	apps := shareapp.Filter(c.apps.Applications(), strings.Join(args, " "))
	if len(apps) == 0 {
		fmt.Fprintln(c.out, "no applications found")
		return
	}
	for i := range apps {
		a := &apps[i]
		fmt.Fprintf(c.out, "%s  %s %s  %s  %s  shares=%d  paid=%s\n",
			a.ID, a.Surname, a.FirstName, a.Email, a.PhoneNumber, a.SharesApplied, a.AmountPaid)
	}
	fmt.Fprintf(c.out, "%d application(s)\n", len(apps))
}

func (c *console) update(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "usage: update <id> <field>=<value> ...")
		return
	}
	id := args[0]

	// edit starts from the stored record, like the site's edit dialog
	var app shareapp.Application
	var found bool
	for _, a := range c.apps.Applications() {
		if a.ID == id {
			app, found = a, true
			break
		}
	}
	if !found {
		fmt.Fprintf(c.out, "no application with id %s\n", id)
		return
	}

	if !c.fill(&app, args[1:]) {
		return
	}
	if !c.validated(app) {
		return
	}
	c.apps.Update(id, app)
	fmt.Fprintf(c.out, "application %s updated\n", id)
}

func (c *console) delete(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: delete <id>")
		return
	}
	c.apps.Delete(args[0])
	fmt.Fprintf(c.out, "application %s deleted\n", args[0])
}

func (c *console) export(args []string) {
	apps := shareapp.Filter(c.apps.Applications(), strings.Join(args, " "))
	if len(apps) == 0 {
		fmt.Fprintln(c.out, "nothing to export")
		return
	}
	filename, err := shareapp.ExportFile("share_applications", apps)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "wrote %s (%d records)\n", filename, len(apps))
}

// fill applies field=value arguments onto app, reporting the first
// bad argument. It returns false when input was rejected.
func (c *console) fill(app *shareapp.Application, args []string) bool {
	for i := range args {
		key, value, ok := strings.Cut(args[i], "=")
		if !ok {
			fmt.Fprintf(c.out, "expected <field>=<value>, got %q\n", args[i])
			return false
		}
		if err := setField(app, key, value); err != nil {
			fmt.Fprintln(c.out, err)
			return false
		}
	}
	return true
}

// validated runs the form rules and prints each error. The store is
// only called when this passes, matching the site's submit path.
func (c *console) validated(app shareapp.Application) bool {
	errs := shareapp.Validate(app)
	if len(errs) == 0 {
		return true
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(c.out, "%s: %s\n", field, errs[field])
	}
	return false
}

// setField maps a wire-name key onto the matching struct field. id and
// createdAt are store-generated and can't be set from the console.
func setField(app *shareapp.Application, key, value string) error {
	switch key {
	case "sharesApplied":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("sharesApplied: %q is not a number", value)
		}
		app.SharesApplied = n
	case "amountPaid":
		app.AmountPaid = value
	case "title":
		app.Title = value
	case "surname":
		app.Surname = value
	case "firstName":
		app.FirstName = value
	case "otherNames":
		app.OtherNames = value
	case "address":
		app.Address = value
	case "city":
		app.City = value
	case "state":
		app.State = value
	case "country":
		app.Country = value
	case "phoneNumber":
		app.PhoneNumber = value
	case "dob":
		app.DOB = value
	case "email":
		app.Email = value
	case "nextOfKin":
		app.NextOfKin = value
	case "chnNumber":
		app.CHNNumber = value
	case "cscsNumber":
		app.CSCSNumber = value
	case "stockbroker":
		app.Stockbroker = value
	case "memberCode":
		app.MemberCode = value
	case "jointTitle":
		app.JointTitle = value
	case "jointSurname":
		app.JointSurname = value
	case "jointFirstName":
		app.JointFirstName = value
	case "jointOtherNames":
		app.JointOtherNames = value
	case "bankName":
		app.BankName = value
	case "bvn":
		app.BVN = value
	case "accountNumber":
		app.AccountNumber = value
	case "branch":
		app.Branch = value
	case "cityState":
		app.CityState = value
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

// splitArgs splits a command line on spaces, keeping double-quoted
// runs together: address="12 Marina Road" is one argument.
func splitArgs(line string) []string {
	var args []string
	var cur strings.Builder
	inQuotes := false
	flushed := true

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			flushed = false
		case r == ' ' && !inQuotes:
			if !flushed || cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
				flushed = true
			}
		default:
			cur.WriteRune(r)
			flushed = false
		}
	}
	if !flushed || cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}
