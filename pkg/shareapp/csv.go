// Copyright 2025 The AdsFusion Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package shareapp

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column order of an export. It matches the
// spreadsheet the site's review page produced, column for column.
var csvHeader = []string{
	"ID",
	"Shares Applied",
	"Amount Paid",
	"Title",
	"Surname",
	"First Name",
	"Other Names",
	"Address",
	"City",
	"State",
	"Country",
	"Phone Number",
	"Date of Birth",
	"Email",
	"Next of Kin",
	"CHN Number",
	"CSCS Number",
	"Stockbroker",
	"Member Code",
	"Joint Title",
	"Joint Surname",
	"Joint First Name",
	"Joint Other Names",
	"Bank Name",
	"BVN",
	"Account Number",
	"Branch",
	"City/State",
	"Created At",
}

func (a *Application) csvRecord() []string {
	return []string{
		a.ID,
		strconv.Itoa(a.SharesApplied),
		a.AmountPaid,
		a.Title,
		a.Surname,
		a.FirstName,
		a.OtherNames,
		a.Address,
		a.City,
		a.State,
		a.Country,
		a.PhoneNumber,
		a.DOB,
		a.Email,
		a.NextOfKin,
		a.CHNNumber,
		a.CSCSNumber,
		a.Stockbroker,
		a.MemberCode,
		a.JointTitle,
		a.JointSurname,
		a.JointFirstName,
		a.JointOtherNames,
		a.BankName,
		a.BVN,
		a.AccountNumber,
		a.Branch,
		a.CityState,
		a.CreatedAt,
	}
}

// WriteCSV writes the header row plus one row per application with
// RFC4180 quoting: fields containing a comma, quote or newline are
// wrapped in double quotes with inner quotes doubled. A pure
// projection of whatever slice the caller passes, typically the
// filtered view.
func WriteCSV(w io.Writer, apps []Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range apps {
		if err := cw.Write(apps[i].csvRecord()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes apps to <basename>.csv in the current directory
// and returns the filename.
func ExportFile(basename string, apps []Application) (string, error) {
	filename := basename + ".csv"
	fd, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("problem creating %s: %v", filename, err)
	}
	if err := WriteCSV(fd, apps); err != nil {
		fd.Close()
		return "", fmt.Errorf("problem writing %s: %v", filename, err)
	}
	return filename, fd.Close()
}
