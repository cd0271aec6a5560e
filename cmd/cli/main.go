package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duckdrill/duckdrill"
	"github.com/duckdrill/duckdrill/db"
	"github.com/duckdrill/duckdrill/hr"
	"github.com/duckdrill/duckdrill/lessons"
)

const (
	PromptColor  = "\033[36m" // Cyan
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// Version is set at build time via -ldflags
var Version = "dev"

// CLI holds the CLI state
type CLI struct {
	engine      *db.Engine
	history     []string
	historyFile string
}

func main() {
	dbPath := flag.String("db", "hr_database.duckdb", "Path to the database file (:memory: for in-memory)")
	readOnly := flag.Bool("readonly", false, "Open the database read-only")
	memoryLimit := flag.String("memoryLimit", "2GB", "Memory limit for the engine")
	threads := flag.Int("threads", 4, "Number of threads for the engine")
	setup := flag.Bool("setup", false, "Create the HR schema and load seed data, then exit")
	schemaPath := flag.String("schema", "", "Schema SQL file for -setup (path or URL)")
	dataPath := flag.String("data", "", "Seed data SQL file for -setup (path or URL)")
	gitUrl := flag.String("gitUrl", "", "Git URL of a lesson pack to clone before setup")
	packDir := flag.String("packDir", "lesson-pack", "Directory for the cloned lesson pack")
	lessonName := flag.String("lesson", "", "Run one lesson (or 'all') and exit")
	sqlFile := flag.String("sqlFile", "", "SQL file to execute (non-interactive)")
	flag.Parse()

	cfg := db.Config{
		Path:        *dbPath,
		ReadOnly:    *readOnly,
		MemoryLimit: *memoryLimit,
		Threads:     *threads,
	}

	if *gitUrl != "" {
		fmt.Printf("%sFetching lesson pack: %s%s\n", SuccessColor, *gitUrl, ResetColor)
		if err := hr.FetchPack(*gitUrl, *packDir); err != nil {
			fmt.Printf("%sError fetching lesson pack: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		if *schemaPath == "" {
			*schemaPath = filepath.Join(*packDir, "data", "schema.sql")
		}
		if *dataPath == "" {
			*dataPath = filepath.Join(*packDir, "data", "data.sql")
		}
	}

	if *setup {
		loader := hr.Loader{
			Config:     cfg,
			SchemaPath: *schemaPath,
			DataPath:   *dataPath,
		}
		if err := loader.Run(); err != nil {
			fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	engine := duckdrill.Open(cfg).Engine()

	if *lessonName != "" {
		if err := runLessons(engine, *lessonName); err != nil {
			fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	cli := &CLI{
		engine:      engine,
		history:     make([]string, 0),
		historyFile: getHistoryPath(),
	}

	cli.loadHistory()

	// Execute SQL file if provided
	if *sqlFile != "" {
		err := cli.importFile(*sqlFile)
		if err != nil {
			fmt.Printf("%sError importing file: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	printBanner()
	cli.run()
}

func runLessons(engine *db.Engine, name string) error {
	if name == "all" {
		for _, lesson := range lessons.All() {
			if err := lesson.Run(engine, os.Stdout); err != nil {
				return err
			}
		}
		return nil
	}

	lesson, ok := lessons.Find(name)
	if !ok {
		return fmt.Errorf("unknown lesson %q (use .lessons to list)", name)
	}
	return lesson.Run(engine, os.Stdout)
}

func printBanner() {
	fmt.Println()
	bannerWidth := 39 // inner width of the banner box
	versionLine := fmt.Sprintf("duckdrill v%s", Version)
	padding := bannerWidth - len(versionLine) - 2 // -2 for "  " margins
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	fmt.Printf("%s%s╔═══════════════════════════════════════╗%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s║ %*s%s%*s ║%s\n", BoldColor, PromptColor, leftPad, "", versionLine, rightPad, "", ResetColor)
	fmt.Printf("%s%s║   DuckDB SQL Practice Environment     ║%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s╚═══════════════════════════════════════╝%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println()
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (cli *CLI) run() {
	reader := bufio.NewReader(os.Stdin)
	var multiLineBuffer strings.Builder

	for {
		// Show prompt
		prompt := cli.getPrompt(multiLineBuffer.Len() > 0)
		fmt.Print(prompt)

		// Read input
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("\n%sGoodbye!%s\n", SuccessColor, ResetColor)
			return
		}

		input = strings.TrimSuffix(input, "\n")
		input = strings.TrimSuffix(input, "\r")

		// Handle empty input
		if strings.TrimSpace(input) == "" {
			continue
		}

		// Check for special commands (only when not in multi-line mode)
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(input, ".") {
			if cli.handleCommand(input) {
				continue
			}
		}

		// Multi-line support: accumulate until we see a semicolon
		multiLineBuffer.WriteString(input)

		// Check if the statement is complete (ends with ;)
		trimmed := strings.TrimSpace(multiLineBuffer.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLineBuffer.WriteString(" ")
			continue
		}

		// Execute the complete statement
		sql := strings.TrimSuffix(trimmed, ";")
		multiLineBuffer.Reset()

		if strings.TrimSpace(sql) == "" {
			continue
		}

		// Add to history
		cli.addToHistory(sql + ";")

		// Execute SQL
		result, err := cli.engine.Query(sql)
		if err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		} else {
			result.Print(os.Stdout, "", db.DefaultLimit)
			fmt.Printf("%d row(s) in %s\n", result.RecordsRead, result.ExecutionTime())
		}
	}
}

func (cli *CLI) getPrompt(multiLine bool) string {
	if multiLine {
		return fmt.Sprintf("%s   ...>%s ", PromptColor, ResetColor)
	}
	return fmt.Sprintf("%sduckdrill>%s ", PromptColor, ResetColor)
}

func (cli *CLI) handleCommand(input string) bool {
	trimmed := strings.TrimSpace(input)
	parts := strings.Fields(trimmed)

	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		fmt.Printf("%sGoodbye!%s\n", SuccessColor, ResetColor)
		cli.saveHistory()
		os.Exit(0)

	case ".help", ".h", ".?":
		cli.printHelp()

	case ".tables":
		cli.showTables()

	case ".describe", ".schema":
		if len(parts) > 1 {
			cli.describeTable(parts[1])
		} else {
			fmt.Printf("%s✗ Usage: .describe <table>%s\n", ErrorColor, ResetColor)
		}

	case ".lessons":
		cli.listLessons()

	case ".lesson":
		if len(parts) > 1 {
			if err := runLessons(cli.engine, parts[1]); err != nil {
				fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			}
		} else {
			fmt.Printf("%s✗ Usage: .lesson <name>%s\n", ErrorColor, ResetColor)
		}

	case ".import":
		if len(parts) > 1 {
			err := cli.importFile(parts[1])
			if err != nil {
				fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			}
		} else {
			fmt.Printf("%s✗ Usage: .import <file.sql>%s\n", ErrorColor, ResetColor)
		}

	case ".export":
		if len(parts) > 2 {
			// SQL is everything after the destination path
			query := strings.TrimSpace(strings.TrimPrefix(trimmed, parts[0]))
			query = strings.TrimSpace(strings.TrimPrefix(query, parts[1]))
			if err := cli.exportCSV(parts[1], query); err != nil {
				fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			}
		} else {
			fmt.Printf("%s✗ Usage: .export <file.csv> <query>%s\n", ErrorColor, ResetColor)
		}

	case ".clear", ".cls":
		fmt.Print("\033[H\033[2J")

	case ".history":
		cli.printHistory()

	case ".version":
		fmt.Printf("duckdrill version %s\n", Version)

	default:
		fmt.Printf("%s✗ Unknown command: %s (type .help for commands)%s\n", ErrorColor, parts[0], ResetColor)
	}

	return true
}

func (cli *CLI) printHelp() {
	fmt.Println()
	fmt.Printf("%s%sSpecial Commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  .help, .h           Show this help message")
	fmt.Println("  .quit, .exit        Exit the CLI")
	fmt.Println("  .tables             List tables in the database")
	fmt.Println("  .describe <table>   Show a table's columns")
	fmt.Println("  .lessons            List the available lessons")
	fmt.Println("  .lesson <name>      Run a lesson ('all' runs every one)")
	fmt.Println("  .import <file>      Execute SQL statements from a file")
	fmt.Println("  .export <f> <sql>   Run a query and write the result as CSV")
	fmt.Println("  .history            Show command history")
	fmt.Println("  .clear              Clear the screen")
	fmt.Println("  .version            Show version info")
	fmt.Println()
	fmt.Printf("%s%sSQL:%s any DuckDB statement, terminated by a semicolon.\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  SELECT * FROM employees WHERE salary > 10000;")
	fmt.Println("  SELECT department_id, AVG(salary) FROM employees GROUP BY 1;")
	fmt.Println()
}

func (cli *CLI) showTables() {
	tables, err := cli.engine.Tables()
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	if len(tables) == 0 {
		fmt.Println("No tables (run with -setup to load the HR sample data)")
		return
	}
	for _, table := range tables {
		fmt.Printf("  %s\n", table)
	}
}

func (cli *CLI) describeTable(table string) {
	result, err := cli.engine.Describe(table)
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	result.Print(os.Stdout, table, len(result.Data))
}

func (cli *CLI) listLessons() {
	fmt.Println()
	for _, lesson := range lessons.All() {
		fmt.Printf("  %s%-12s%s %s (%d examples)\n",
			BoldColor, lesson.Name, ResetColor, lesson.Title, len(lesson.Examples))
	}
	fmt.Println()
}

func (cli *CLI) exportCSV(path, query string) error {
	query = strings.TrimSuffix(strings.TrimSpace(query), ";")
	if query == "" {
		return fmt.Errorf("no query given")
	}

	result, err := cli.engine.Query(query)
	if err != nil {
		return err
	}

	sink, err := db.OpenSink(path, nil)
	if err != nil {
		return err
	}

	if err := result.WriteCSV(sink); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	fmt.Printf("%s✓ Wrote %d row(s) to %s%s\n", SuccessColor, result.RecordsRead, path, ResetColor)
	return nil
}

func (cli *CLI) addToHistory(cmd string) {
	// Don't add duplicates of the last command
	if len(cli.history) > 0 && cli.history[len(cli.history)-1] == cmd {
		return
	}
	cli.history = append(cli.history, cmd)

	// Limit history size
	if len(cli.history) > 1000 {
		cli.history = cli.history[len(cli.history)-1000:]
	}
}

func (cli *CLI) printHistory() {
	if len(cli.history) == 0 {
		fmt.Println("No command history")
		return
	}

	start := 0
	if len(cli.history) > 20 {
		start = len(cli.history) - 20
	}

	for i := start; i < len(cli.history); i++ {
		fmt.Printf("  %3d  %s\n", i+1, cli.history[i])
	}
}

func getHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckdrill_history")
}

func (cli *CLI) loadHistory() {
	if cli.historyFile == "" {
		return
	}

	file, err := os.Open(cli.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		cli.history = append(cli.history, scanner.Text())
	}
}

func (cli *CLI) saveHistory() {
	if cli.historyFile == "" {
		return
	}

	file, err := os.Create(cli.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	// Save last 1000 entries
	start := 0
	if len(cli.history) > 1000 {
		start = len(cli.history) - 1000
	}

	for i := start; i < len(cli.history); i++ {
		_, _ = file.WriteString(cli.history[i] + "\n")
	}
}

// importFile reads and executes SQL statements from a file
func (cli *CLI) importFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	content := string(data)
	statements := splitStatements(content)

	successCount := 0
	errorCount := 0

	for i, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}

		result, err := cli.engine.Query(stmt)
		if err != nil {
			fmt.Printf("%s[%d] ✗ %s%s\n", ErrorColor, i+1, truncate(stmt, 50), ResetColor)
			fmt.Printf("      Error: %v\n", err)
			errorCount++
		} else {
			successCount++
			fmt.Printf("%s[%d] ✓ %s (%d rows)%s\n", SuccessColor, i+1, truncate(stmt, 50), result.RecordsRead, ResetColor)
		}
	}

	fmt.Printf("\n%s✓ Import complete: %d succeeded, %d failed%s\n",
		SuccessColor, successCount, errorCount, ResetColor)

	return nil
}

// splitStatements splits SQL content into individual statements
func splitStatements(content string) []string {
	var statements []string
	var current strings.Builder
	inString := false
	stringChar := byte(0)

	for i := 0; i < len(content); i++ {
		ch := content[i]

		// Handle string literals
		if (ch == '\'' || ch == '"') && (i == 0 || content[i-1] != '\\') {
			if !inString {
				inString = true
				stringChar = ch
			} else if ch == stringChar {
				inString = false
			}
		}

		// Handle comments
		if !inString && ch == '-' && i+1 < len(content) && content[i+1] == '-' {
			// Skip to end of line
			for i < len(content) && content[i] != '\n' {
				i++
			}
			continue
		}

		// Statement separator
		if !inString && ch == ';' {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	// Handle last statement without semicolon
	stmt := strings.TrimSpace(current.String())
	if stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
