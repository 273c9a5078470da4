package migration

import (
	"context"
	"fmt"

	lorem "github.com/HandmadeNetwork/golorem"
	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/auth"
	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/Tnecniv1/mathbank-sub001/src/config"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/jackc/pgx/v5/tracelog"
)

// Creates only what's necessary to get the app running: the anchor
// vocabulary and an admin account.
func BareMinimumSeed() {
	Migrate(LatestVersion())

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		panic(err)
	}
	defer tx.Rollback(ctx)

	fmt.Println("Creating anchors...")
	seedAnchors := map[string][]string{
		anchors.TableComplexity: {"easy", "medium", "hard"},
		anchors.TableSubject:    {"algebra", "geometry", "analysis"},
		anchors.TableChapter:    {"polynomials", "triangles", "limits"},
		anchors.TableExercise:   {"warmup", "exam"},
	}
	for table, slugs := range seedAnchors {
		for _, slug := range slugs {
			_, err := tx.Exec(ctx,
				fmt.Sprintf(`INSERT INTO %s (slug, name) VALUES ($1, INITCAP($1)) ON CONFLICT DO NOTHING`, table),
				slug,
			)
			if err != nil {
				panic(err)
			}
		}
	}

	fmt.Println("Creating admin user (\"admin\"/\"password\")...")
	err = auth.CreateUser(ctx, tx, "admin", "password")
	if err != nil {
		panic(err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		panic(err)
	}
}

// Seeds the database with sample data for local dev.
func SampleSeed() {
	BareMinimumSeed()

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	fmt.Println("Creating sample items...")
	var itemIDs []int
	for i := 1; i <= 12; i++ {
		id, err := bankdata.CreateItem(ctx, conn, bankdata.CreateItemInput{
			Ref:       fmt.Sprintf("SAMPLE-%03d", i),
			Statement: lorem.Paragraph(1, 3),
			Solution:  lorem.Paragraph(1, 2),
			Tags:      []string{"sample"},
		})
		if err != nil {
			panic(err)
		}
		itemIDs = append(itemIDs, id)
	}

	fmt.Println("Creating a draft compilation...")
	complexityID, _, err := anchors.Resolve(ctx, conn, anchors.TableComplexity, "easy")
	if err != nil {
		panic(err)
	}
	subjectID, _, err := anchors.Resolve(ctx, conn, anchors.TableSubject, "algebra")
	if err != nil {
		panic(err)
	}

	var items []bankdata.ItemRef
	for _, id := range itemIDs[:5] {
		items = append(items, bankdata.ItemRef{ItemID: id})
	}
	compID, err := bankdata.CreateCompilation(ctx, conn, bankdata.CreateCompilationInput{
		Title:       "Sample Atelier",
		Description: lorem.Sentence(4, 10),
		Anchors: anchors.Set{
			ComplexityID: &complexityID,
			SubjectID:    &subjectID,
		},
		Items: items,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("Created compilation", compID)

	fmt.Println("Done!")
}
