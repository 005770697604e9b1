package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fpgrowth/cmd"
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/miners/fpgrowth"
)

func init() {
	cmd.UsageMessage = "fpgrowth --help"
	cmd.ExtendedMessage = `
fpgrowth - mine frequent itemsets with the fp-growth algorithm

$ fpgrowth -o <path> --support=<float> [Global Options] \
    <input-path> \
    [<reporter> [Reporter Options]]

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the documentation for Reporters for details.


Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    -s, --support=<float>     minimum support of itemsets as a fraction of
                              the transaction count, in (0, 1) (required)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    Each line is a transaction. The items are integers and are space
    separated. Duplicate items on one line count once.

    Example file:
        10 1 5 7
        213 2 5 1
        23 1 4 5 7
        3 4 1

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the itemsets as they are found
    file                      write the itemsets to a file in the output dir
    count                     write the number of itemsets found on exit
    unique                    takes an "inner reporter" but only passes the
                              first sighting of each itemset to it

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the itemsets

    count Options
        -f, filename=<name>   name of the file in the output directory to
                              write the count

    unique Options
        --histogram=<name>    if set unique will write the histogram of how
                              many times each itemset was emitted

    Examples

        $ fpgrowth -o <path> --support=.01 ./transactions.dat.gz

        $ fpgrowth -o <path> --support=.05 ./transactions.dat \
            chain log count

        $ fpgrowth --skip-log=DEBUG -o <path> --support=.1 ./transactions.dat \
            unique chain \
                log -p unique \
                file -p unique-patterns \
            endchain
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:s:",
		[]string{
			"help",
			"output=", "cache=",
			"support=",
			"reporters",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := 0.0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "-s", "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters() {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 || support >= 1 {
		fmt.Fprintf(os.Stderr, "Support must be a fraction in (0, 1), got %v\n", support)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply an input path\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	inputPath := cmd.AssertFileOrDirExists(args[0])

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:   cache,
		Output:  output,
		Support: support,
	}
	rptr := cmd.ParseReporter(args[1:], conf)
	m := fpgrowth.NewMiner(conf)

	start := time.Now()
	err = m.Mine(func() (reader io.Reader, closer func()) {
		return cmd.Input(inputPath)
	}, rptr)
	elapsed := time.Since(start)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return 1
	}
	errors.Logf("INFO", "mining took %v", elapsed)

	err = m.Close()
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		return 1
	}
	return 0
}
