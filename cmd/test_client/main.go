package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "employeah-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testSearchByJob(ctx, session)
	testSearchBySkills(ctx, session)
	testHistoricalStats(ctx, session)
	testSkillTrend(ctx, session)
	testJobFieldsBySkill(ctx, session)
	testCoursesBySkill(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testSearchByJob(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_by_job")

	params := &mcp.CallToolParams{
		Name: "search_by_job",
		Arguments: map[string]any{
			"job":         "Software Engineer",
			"location":    "Athens",
			"time_window": "all",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("search_by_job failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("search_by_job passed")
}

func testSearchBySkills(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_by_skills")

	params := &mcp.CallToolParams{
		Name: "search_by_skills",
		Arguments: map[string]any{
			"skills": []string{"Python", "SQL"},
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("search_by_skills failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("search_by_skills passed")
}

func testHistoricalStats(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: historical_stats")

	params := &mcp.CallToolParams{
		Name: "historical_stats",
		Arguments: map[string]any{
			"job": "Data Analyst",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("historical_stats failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("historical_stats passed")
}

func testSkillTrend(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: skill_trend")

	params := &mcp.CallToolParams{
		Name: "skill_trend",
		Arguments: map[string]any{
			"skill":       "Python",
			"time_window": "3m",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("skill_trend failed: %v", err)
		return
	}

	printResult(result)

	// Edge case: a bad window label must produce a tool error, not a panic.
	fmt.Println("skill_trend with bad window")
	badParams := &mcp.CallToolParams{
		Name: "skill_trend",
		Arguments: map[string]any{
			"skill":       "Python",
			"time_window": "5y",
		},
	}
	if _, err := session.CallTool(ctx, badParams); err != nil {
		log.Printf("skill_trend (bad window): %v (expected)", err)
	}

	fmt.Println("skill_trend passed")
}

func testJobFieldsBySkill(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_fields_by_skill")

	params := &mcp.CallToolParams{
		Name: "job_fields_by_skill",
		Arguments: map[string]any{
			"skill": "SQL",
			"limit": 3,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("job_fields_by_skill failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("job_fields_by_skill passed")
}

func testCoursesBySkill(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: courses_by_skill")

	params := &mcp.CallToolParams{
		Name: "courses_by_skill",
		Arguments: map[string]any{
			"skill": "Machine Learning",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("courses_by_skill failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("courses_by_skill passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
