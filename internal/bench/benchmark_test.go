package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/skelly-dev/javadoclink/internal/languages"
	"github.com/skelly-dev/javadoclink/internal/resolve"
	"github.com/skelly-dev/javadoclink/internal/state"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

func BenchmarkScanAndResolve_MediumTree(b *testing.B) {
	root := b.TempDir()
	createSyntheticJavaTree(b, root, 250)

	registry := languages.NewDefaultRegistry(languages.Options{})
	resolver := resolve.Resolver{Link: javadoclink.MustForVersion("17"), Module: "com.example"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := registry.ParseDirectory(context.Background(), root, nil)
		if err != nil {
			b.Fatalf("parse failed: %v", err)
		}
		resolved := resolver.ResolveAll(result.Members())
		if len(resolved) == 0 {
			b.Fatalf("expected resolved members")
		}
	}
}

func BenchmarkScan_CachedTree(b *testing.B) {
	root := b.TempDir()
	createSyntheticJavaTree(b, root, 250)
	statePath := filepath.Join(b.TempDir(), state.DefaultStateFile)

	warm := languages.NewDefaultRegistry(languages.Options{})
	cache := state.NewState("")
	warm.SetCache(cache)
	if _, err := warm.ParseDirectory(context.Background(), root, nil); err != nil {
		b.Fatalf("warm-up parse failed: %v", err)
	}
	if _, err := cache.Save(statePath); err != nil {
		b.Fatalf("save failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache, err := state.Load(statePath, "")
		if err != nil {
			b.Fatalf("load failed: %v", err)
		}
		registry := languages.NewDefaultRegistry(languages.Options{})
		registry.SetCache(cache)
		if _, err := registry.ParseDirectory(context.Background(), root, nil); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
		if hits, _ := cache.Stats(); hits != 250 {
			b.Fatalf("expected every file from state, got %d", hits)
		}
	}
}

func BenchmarkMethodLink_AllVersions(b *testing.B) {
	versions := javadoclink.SupportedVersions()
	links := make([]javadoclink.Link, 0, len(versions))
	for _, version := range versions {
		links = append(links, javadoclink.MustForVersion(version))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, link := range links {
			if _, err := link.MethodLink("java.base", "java/lang/String", "format",
				"(Ljava/util/Locale;Ljava/lang/String;[Ljava/lang/Object;)Ljava/lang/String;", true); err != nil {
				b.Fatalf("link failed: %v", err)
			}
		}
	}
	b.ReportMetric(float64(len(links)), "links/op")
}

func createSyntheticJavaTree(tb testing.TB, root string, files int) {
	tb.Helper()

	for i := 0; i < files; i++ {
		dir := filepath.Join(root, "com", "example", fmt.Sprintf("pkg%d", i%10))
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("mkdir failed: %v", err)
		}

		filePath := filepath.Join(dir, fmt.Sprintf("Type%03d.java", i))
		src := fmt.Sprintf(`package com.example.pkg%d;

import java.util.List;

public class Type%03d {
    public static final int ID = %d;

    public Type%03d(String name, int... sizes) {}

    public List<String> names(Object[][] grid, java.util.Map<String, Integer> counts) {
        return null;
    }

    public static class Inner {
        public void run() {}
    }
}
`, i%10, i, i, i)

		if err := os.WriteFile(filePath, []byte(src), 0644); err != nil {
			tb.Fatalf("write failed: %v", err)
		}
	}
}
