package main

import (
	"flag"
	"log"
	"os"

	bgpsim "github.com/Emeline-1/bgpsim"
)

func usage() {
	println("\nUsage of bgpsim:\n")
	println("bgpsim has one mode:")
	println("  - run: load a topology and seed announcements, converge, and write the RIB.\n")
	println("Type")
	println("  ./bgpsim run -h")
	println("for further information.\n")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}

	switch command := os.Args[1]; command {
	case "run":
		launchRun(os.Args[2:])
	case "-h", "--help":
		usage()
	default:
		log.Println("Unknown command:", command)
		log.Println("Type './bgpsim -h' for help")
	}
}

func launchRun(args []string) {
	cmd := flag.NewFlagSet("run", flag.ExitOnError)

	relFile1 := cmd.String("rel1", "", "First CAIDA AS-relationships file (required)")
	relFile2 := cmd.String("rel2", "", "Second CAIDA AS-relationships file (optional)")
	annFile := cmd.String("anns", "", "Seed announcements CSV (required)")
	rovFile := cmd.String("rov", "", "ROV ASN list (optional)")
	outFile := cmd.String("out", "", "Output RIB CSV path (required)")
	sqliteFile := cmd.String("sqlite", "", "Optional: also write the RIB to this SQLite file")
	parallelism := cmd.Int("parallel", 1, "Number of ASes to process concurrently per phase sweep (1 = sequential)")

	cmd.Parse(args)

	if *relFile1 == "" || *annFile == "" || *outFile == "" {
		println("Missing required arguments: -rel1, -anns and -out are mandatory")
		os.Exit(1)
	}

	relFiles := []string{*relFile1}
	if *relFile2 != "" {
		relFiles = append(relFiles, *relFile2)
	}

	g, ok, err := bgpsim.Run(relFiles, *annFile, *rovFile, *parallelism)
	if err != nil {
		log.Fatal("[bgpsim]: " + err.Error())
	}
	if !ok {
		log.Fatal("[bgpsim]: aborting, provider relation contains a cycle")
	}

	if err := bgpsim.WriteRIBsCSV(g, *outFile); err != nil {
		log.Fatal("[bgpsim]: " + err.Error())
	}
	if *sqliteFile != "" {
		if err := bgpsim.WriteRIBsSQLite(g, *sqliteFile); err != nil {
			log.Fatal("[bgpsim]: " + err.Error())
		}
	}
}
