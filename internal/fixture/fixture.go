// Package fixture builds the bootstrap dataset for the Demo Forums API.
//
// The dataset is deterministic: entity identifiers derive from fixed seed
// strings and all pseudo-random choices (comment counts, update offsets)
// come from a fixed-seed source, so repeated bootstrapping produces an
// identical dataset apart from "days ago" timestamps anchored at load time.
package fixture

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/domain"
	"github.com/mcbarinov/p1--demo-forums--api/internal/storage/memory"
	"github.com/mcbarinov/p1--demo-forums--api/pkg/ident"
)

// randSeed pins the pseudo-random choices so the dataset is reproducible.
const randSeed = 20240117

// webDevPostCount is the number of posts seeded into the web-development
// forum; every other forum gets one post per topic below.
const webDevPostCount = 120

type forumSpec struct {
	slug        string
	title       string
	description string
	category    domain.Category
}

var forums = []forumSpec{
	{"web-development", "Web Development", "Discuss web technologies, frameworks, and best practices", domain.CategoryTechnology},
	{"artificial-intelligence", "Artificial Intelligence & ML", "Machine learning, neural networks, and AI applications", domain.CategoryTechnology},
	{"mobile-development", "Mobile Development", "iOS, Android, and cross-platform mobile development", domain.CategoryTechnology},
	{"physics", "Physics & Astronomy", "Discuss physics theories, experiments, and space exploration", domain.CategoryScience},
	{"biology", "Biology & Life Sciences", "Genetics, ecology, and the study of living organisms", domain.CategoryScience},
	{"chemistry", "Chemistry", "Chemical reactions, molecular structures, and laboratory techniques", domain.CategoryScience},
	{"digital-art", "Digital Art & Design", "Digital painting, 3D modeling, and graphic design", domain.CategoryArt},
	{"traditional-art", "Traditional Art", "Painting, drawing, sculpture, and classical art forms", domain.CategoryArt},
	{"photography", "Photography", "Camera techniques, composition, and photo editing", domain.CategoryArt},
}

var webDevTopics = []string{
	"Getting Started with React Hooks",
	"TypeScript Best Practices in 2024",
	"Building RESTful APIs with FastAPI",
	"CSS Grid vs Flexbox: When to Use Each",
	"Understanding async/await in JavaScript",
	"Modern Authentication Patterns",
	"Optimizing Web Performance",
	"Introduction to Web Components",
	"State Management Solutions Compared",
	"Responsive Design Techniques",
}

var forumTopics = map[string][]string{
	"artificial-intelligence": {
		"Neural Networks Fundamentals",
		"Deep Learning Frameworks Comparison",
		"Natural Language Processing Basics",
		"Computer Vision Applications",
		"Reinforcement Learning Introduction",
	},
	"mobile-development": {
		"React Native vs Flutter",
		"iOS App Architecture Patterns",
		"Android Jetpack Compose Guide",
		"Mobile App Performance Optimization",
		"Cross-Platform Development Tips",
	},
	"physics": {
		"Quantum Mechanics Introduction",
		"Black Holes and Event Horizons",
		"String Theory Explained",
		"Particle Physics Discoveries",
		"Cosmology and the Big Bang",
	},
	"biology": {
		"CRISPR Gene Editing Technology",
		"Evolution and Natural Selection",
		"Cellular Biology Basics",
		"Ecosystems and Biodiversity",
		"Genetics and Heredity",
	},
	"chemistry": {
		"Organic Chemistry Fundamentals",
		"Chemical Bonding Explained",
		"Periodic Table Trends",
		"Reaction Kinetics",
		"Laboratory Safety Best Practices",
	},
	"digital-art": {
		"Digital Painting Techniques",
		"3D Modeling for Beginners",
		"Graphic Design Principles",
		"Color Theory in Digital Art",
		"Creating Game Assets",
	},
	"traditional-art": {
		"Oil Painting Basics",
		"Drawing Fundamentals",
		"Sculpture Techniques",
		"Watercolor Methods",
		"Art History Overview",
	},
	"photography": {
		"Camera Settings Guide",
		"Composition Rules",
		"Portrait Photography Tips",
		"Landscape Photography",
		"Photo Editing Workflow",
	},
}

var commentTemplates = []string{
	"Great post! Thanks for sharing.",
	"I have a question about this...",
	"This is very helpful, thank you!",
	"Could you elaborate on this point?",
	"I disagree with this approach.",
	"Excellent explanation!",
	"This doesn't work for me.",
	"Can you provide more examples?",
	"Very informative, thanks!",
	"I'm having trouble understanding this.",
	"This is exactly what I needed!",
	"What about edge cases?",
	"Great tutorial!",
	"This saved me hours of work.",
	"Could you clarify this section?",
	"I found a better solution.",
	"Thanks for the detailed post!",
	"This is outdated information.",
	"Brilliant explanation!",
	"I have a follow-up question.",
}

// Load populates the store with the bootstrap dataset: four user accounts
// (password equals username), nine forums, 120 posts in web-development plus
// five in every other forum, and zero to five comments per post.
func Load(ctx context.Context, store *memory.Store) error {
	rng := rand.New(rand.NewSource(randSeed))
	now := time.Now().UTC()

	users := loadUsers(ctx, store)

	var posts []domain.Post
	for i, spec := range forums {
		forum := domain.Forum{
			ID:          ident.FromSeed(spec.slug),
			Slug:        spec.slug,
			Title:       spec.title,
			Description: spec.description,
			Category:    spec.category,
		}
		if err := store.AddForum(ctx, &forum); err != nil {
			return fmt.Errorf("fixture forum %q: %w", spec.slug, err)
		}

		if i == 0 {
			posts = append(posts, loadWebDevPosts(ctx, store, rng, forum, users, now)...)
		}
	}

	posts = append(posts, loadOtherForumPosts(ctx, store, rng, users, now)...)
	loadComments(ctx, store, rng, posts, users, now)
	return nil
}

func loadUsers(ctx context.Context, store *memory.Store) []domain.User {
	specs := []struct {
		username string
		role     domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"user1", domain.RoleUser},
		{"alice", domain.RoleUser},
		{"bob", domain.RoleUser},
	}

	users := make([]domain.User, 0, len(specs))
	for _, spec := range specs {
		account := domain.UserWithPassword{
			User: domain.User{
				ID:       ident.FromSeed(spec.username),
				Username: spec.username,
				Role:     spec.role,
			},
			Password: spec.username,
		}
		store.AddUser(ctx, &account)
		users = append(users, account.Public())
	}
	return users
}

func loadWebDevPosts(ctx context.Context, store *memory.Store, rng *rand.Rand, forum domain.Forum, users []domain.User, now time.Time) []domain.Post {
	posts := make([]domain.Post, 0, webDevPostCount)
	for i := 0; i < webDevPostCount; i++ {
		topic := webDevTopics[i%len(webDevTopics)]
		if iteration := i / len(webDevTopics); iteration > 0 {
			topic = fmt.Sprintf("%s - Part %d", topic, iteration+1)
		}

		createdAt := now.AddDate(0, 0, -(webDevPostCount - i))
		tags := []string{"discussion", "question"}
		if i%2 != 0 {
			tags = []string{"tutorial", "guide"}
		}

		post := domain.Post{
			ID:        ident.FromSeed(fmt.Sprintf("post-%d", i+1)),
			ForumID:   forum.ID,
			Number:    i + 1,
			Title:     topic,
			Content:   topicContent(topic),
			Tags:      tags,
			AuthorID:  users[i%len(users)].ID,
			CreatedAt: createdAt,
			UpdatedAt: maybeUpdated(rng, createdAt, 0.7, 5),
		}
		store.AppendPost(ctx, &post)
		posts = append(posts, post)
	}
	return posts
}

func loadOtherForumPosts(ctx context.Context, store *memory.Store, rng *rand.Rand, users []domain.User, now time.Time) []domain.Post {
	dayOffsets := []int{60, 50, 40, 30, 20}

	var posts []domain.Post
	seq := webDevPostCount + 1
	for _, spec := range forums[1:] {
		forumID := ident.FromSeed(spec.slug)
		for i, topic := range forumTopics[spec.slug] {
			createdAt := now.AddDate(0, 0, -dayOffsets[i])
			tags := []string{"discussion"}
			if i%2 != 0 {
				tags = []string{"guide"}
			}

			post := domain.Post{
				ID:        ident.FromSeed(fmt.Sprintf("post-%d", seq)),
				ForumID:   forumID,
				Number:    i + 1,
				Title:     topic,
				Content:   topicContent(topic),
				Tags:      tags,
				AuthorID:  users[i%len(users)].ID,
				CreatedAt: createdAt,
				UpdatedAt: maybeUpdated(rng, createdAt, 0.8, 3),
			}
			store.AppendPost(ctx, &post)
			posts = append(posts, post)
			seq++
		}
	}
	return posts
}

func loadComments(ctx context.Context, store *memory.Store, rng *rand.Rand, posts []domain.Post, users []domain.User, now time.Time) {
	seq := 1
	for _, post := range posts {
		postAge := int(now.Sub(post.CreatedAt).Hours() / 24)
		maxAge := postAge
		if maxAge > 30 {
			maxAge = 30
		}

		count := rng.Intn(6)
		for i := 0; i < count; i++ {
			createdAt := post.CreatedAt.AddDate(0, 0, rng.Intn(maxAge+1))
			comment := domain.Comment{
				ID:        ident.FromSeed(fmt.Sprintf("comment-%d", seq)),
				PostID:    post.ID,
				Content:   commentTemplates[i%len(commentTemplates)],
				AuthorID:  users[rng.Intn(len(users))].ID,
				CreatedAt: createdAt,
				UpdatedAt: maybeUpdated(rng, createdAt, 0.9, 2),
			}
			store.AppendComment(ctx, &comment)
			seq++
		}
	}
}

func topicContent(topic string) string {
	return fmt.Sprintf("This is the content for post about %s.", strings.ToLower(topic))
}

// maybeUpdated returns an update timestamp 0..maxDays after createdAt with
// the given probability, or nil.
func maybeUpdated(rng *rand.Rand, createdAt time.Time, probability float64, maxDays int) *time.Time {
	if rng.Float64() >= probability {
		return nil
	}
	t := createdAt.AddDate(0, 0, rng.Intn(maxDays+1))
	return &t
}
